package smartlead

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// EmailAccounts fetches one page of the account's sending mailboxes.
func (c *Client) EmailAccounts(ctx context.Context, offset, limit int) (JSON, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	return c.get(ctx, "/email-accounts", query)
}

// EmailAccount fetches a single email account. The trailing slash is
// part of the upstream route.
func (c *Client) EmailAccount(ctx context.Context, emailAccountID int) (JSON, error) {
	return c.get(ctx, fmt.Sprintf("/email-accounts/%d/", emailAccountID), nil)
}

func (c *Client) EmailAccountWarmupStats(ctx context.Context, emailAccountID int) (JSON, error) {
	return c.get(ctx, fmt.Sprintf("/email-accounts/%d/warmup-stats", emailAccountID), nil)
}

// EmailAccountParams creates a mailbox, or updates one when ID is set.
type EmailAccountParams struct {
	ID                  *int   `json:"id,omitempty"`
	FromName            string `json:"from_name" validate:"required"`
	FromEmail           string `json:"from_email" validate:"required,email"`
	UserName            string `json:"user_name" validate:"required"`
	Password            string `json:"password" validate:"required"`
	SMTPHost            string `json:"smtp_host" validate:"required"`
	SMTPPort            int    `json:"smtp_port" validate:"required"`
	IMAPHost            string `json:"imap_host" validate:"required"`
	IMAPPort            int    `json:"imap_port" validate:"required"`
	MaxEmailsPerDay     int    `json:"max_emails_per_day" validate:"gte=0"`
	CustomTrackingURL   string `json:"custom_tracking_url"`
	BCC                 string `json:"bcc"`
	Signature           string `json:"signature"`
	WarmupEnabled       bool   `json:"warmup_enabled"`
	TotalWarmup         *int   `json:"total_warmup,omitempty"`
	DailyRampup         *int   `json:"daily_rampup,omitempty"`
	ReplyRatePercentage *int   `json:"reply_rate_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	ClientID            *int   `json:"client_id,omitempty"`
}

func (c *Client) SaveEmailAccount(ctx context.Context, params EmailAccountParams) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return c.post(ctx, "/email-accounts/save", params)
}

type EmailAccountUpdateParams struct {
	MaxEmailsPerDay   int    `json:"max_emails_per_day" validate:"gte=0"`
	CustomTrackingURL string `json:"custom_tracking_url"`
	BCC               string `json:"bcc"`
	Signature         string `json:"signature"`
	ClientID          *int   `json:"client_id,omitempty"`
	TimeToWaitInMins  *int   `json:"time_to_wait_in_mins,omitempty" validate:"omitempty,gte=0"`
}

func (c *Client) UpdateEmailAccount(
	ctx context.Context,
	emailAccountID int,
	params EmailAccountUpdateParams,
) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return c.post(ctx, fmt.Sprintf("/email-accounts/%d", emailAccountID), params)
}

type WarmupParams struct {
	WarmupEnabled       bool   `json:"warmup_enabled"`
	TotalWarmupPerDay   int    `json:"total_warmup_per_day" validate:"gte=0"`
	DailyRampup         int    `json:"daily_rampup" validate:"gte=0"`
	ReplyRatePercentage int    `json:"reply_rate_percentage" validate:"gte=0,lte=100"`
	WarmupKeyID         string `json:"warmup_key_id"`
}

func (c *Client) UpdateEmailAccountWarmup(
	ctx context.Context,
	emailAccountID int,
	params WarmupParams,
) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return c.post(ctx, fmt.Sprintf("/email-accounts/%d/warmup", emailAccountID), params)
}

// CampaignEmailAccounts fetches every mailbox attached to a campaign.
func (c *Client) CampaignEmailAccounts(ctx context.Context, campaignID int) (JSON, error) {
	return c.get(ctx, fmt.Sprintf("/campaigns/%d/email-accounts", campaignID), nil)
}

func (c *Client) AddEmailAccountsToCampaign(
	ctx context.Context,
	campaignID int,
	emailAccountIDs []int,
) (JSON, error) {
	if len(emailAccountIDs) == 0 {
		return nil, invalidParam("email_account_ids", "min", "0",
			"email_account_ids must have at least 1 elements")
	}

	body := map[string]any{"email_account_ids": compactList(emailAccountIDs)}

	return c.post(ctx, fmt.Sprintf("/campaigns/%d/email-accounts", campaignID), body)
}

func (c *Client) RemoveEmailAccountsFromCampaign(
	ctx context.Context,
	campaignID int,
	emailAccountIDs []int,
) (JSON, error) {
	if len(emailAccountIDs) == 0 {
		return nil, invalidParam("email_account_ids", "min", "0",
			"email_account_ids must have at least 1 elements")
	}

	body := map[string]any{"email_account_ids": compactList(emailAccountIDs)}

	return c.del(ctx, fmt.Sprintf("/campaigns/%d/email-accounts", campaignID), body)
}

// ReconnectFailedEmailAccounts asks the upstream to re-establish every
// mailbox connection currently in a failed state.
func (c *Client) ReconnectFailedEmailAccounts(ctx context.Context) (JSON, error) {
	return c.post(ctx, "/email-accounts/reconnect-failed-email-accounts", nil)
}
