package smartlead

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// CreateCampaignParams names the new campaign. ClientID optionally
// assigns it to a workspace client.
type CreateCampaignParams struct {
	Name     string `json:"name" validate:"required"`
	ClientID *int   `json:"client_id,omitempty"`
}

func (c *Client) CreateCampaign(ctx context.Context, params CreateCampaignParams) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return c.post(ctx, "/campaigns/create", params)
}

// Campaigns fetches every campaign in the account.
func (c *Client) Campaigns(ctx context.Context) (JSON, error) {
	return c.get(ctx, "/campaigns", nil)
}

// Campaign fetches one campaign by its ID.
func (c *Client) Campaign(ctx context.Context, campaignID int) (JSON, error) {
	return c.get(ctx, fmt.Sprintf("/campaigns/%d", campaignID), nil)
}

func (c *Client) DeleteCampaign(ctx context.Context, campaignID int) (JSON, error) {
	return c.del(ctx, fmt.Sprintf("/campaigns/%d", campaignID), nil)
}

// CampaignSequences fetches the email sequence steps of a campaign.
func (c *Client) CampaignSequences(ctx context.Context, campaignID int) (JSON, error) {
	return c.get(ctx, fmt.Sprintf("/campaigns/%d/sequences", campaignID), nil)
}

type SequenceDelay struct {
	DelayInDays int `json:"delay_in_days" validate:"gte=0"`
}

type SequenceVariant struct {
	Subject      string `json:"subject"`
	EmailBody    string `json:"email_body" validate:"required"`
	VariantLabel string `json:"variant_label"`
}

// SequenceParams is one step of a campaign sequence. Either the
// top-level subject/body or a set of variants carries the content.
type SequenceParams struct {
	SeqNumber       int               `json:"seq_number" validate:"gte=1"`
	SeqDelayDetails SequenceDelay     `json:"seq_delay_details"`
	Subject         string            `json:"subject"`
	EmailBody       string            `json:"email_body"`
	SeqVariants     []SequenceVariant `json:"seq_variants,omitempty" validate:"omitempty,dive"`
}

func (c *Client) SaveCampaignSequences(
	ctx context.Context,
	campaignID int,
	sequences []SequenceParams,
) (JSON, error) {
	if len(sequences) == 0 {
		return nil, invalidParam("sequences", "min", "0", "sequences must have at least 1 elements")
	}

	for _, seq := range sequences {
		if err := validateParams(seq); err != nil {
			return nil, err
		}
	}

	body := map[string]any{"sequences": sequences}

	return c.post(ctx, fmt.Sprintf("/campaigns/%d/sequences", campaignID), body)
}

// ScheduleParams is the sending window of a campaign. Days of the week
// are numbered Monday = 0 through Sunday = 6; hours are "HH:MM" in the
// given timezone.
type ScheduleParams struct {
	Timezone             string    `json:"timezone" validate:"required"`
	DaysOfTheWeek        []int     `json:"days_of_the_week" validate:"required,min=1,dive,gte=0,lte=6"`
	StartHour            string    `json:"start_hour" validate:"required"`
	EndHour              string    `json:"end_hour" validate:"required"`
	MinTimeBetweenEmails int       `json:"min_time_between_emails" validate:"gte=0"`
	MaxNewLeadsPerDay    int       `json:"max_new_leads_per_day" validate:"gte=0"`
	ScheduleStartTime    time.Time `json:"schedule_start_time" validate:"required"`
}

func (c *Client) UpdateCampaignSchedule(
	ctx context.Context,
	campaignID int,
	params ScheduleParams,
) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	body := map[string]any{
		"timezone":                params.Timezone,
		"days_of_the_week":        compactList(params.DaysOfTheWeek),
		"start_hour":              params.StartHour,
		"end_hour":                params.EndHour,
		"min_time_between_emails": params.MinTimeBetweenEmails,
		"max_new_leads_per_day":   params.MaxNewLeadsPerDay,
		"schedule_start_time":     params.ScheduleStartTime.Format(time.RFC3339),
	}

	return c.post(ctx, fmt.Sprintf("/campaigns/%d/schedule", campaignID), body)
}

type GeneralSettingsParams struct {
	TrackSettings       []TrackSetting  `json:"track_settings" validate:"required,min=1,dive,enum"`
	StopLeadSettings    StopLeadSetting `json:"stop_lead_settings" validate:"required,enum"`
	UnsubscribeText     string          `json:"unsubscribe_text"`
	SendAsPlainText     bool            `json:"send_as_plain_text"`
	FollowUpPercentage  int             `json:"follow_up_percentage" validate:"gte=0,lte=100"`
	ClientID            int             `json:"client_id"`
	EnableAIESPMatching bool            `json:"enable_ai_esp_matching"`
}

func (c *Client) UpdateCampaignSettings(
	ctx context.Context,
	campaignID int,
	params GeneralSettingsParams,
) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	body := map[string]any{
		"track_settings":         compactList(params.TrackSettings),
		"stop_lead_settings":     params.StopLeadSettings,
		"unsubscribe_text":       params.UnsubscribeText,
		"send_as_plain_text":     params.SendAsPlainText,
		"follow_up_percentage":   params.FollowUpPercentage,
		"client_id":              params.ClientID,
		"enable_ai_esp_matching": params.EnableAIESPMatching,
	}

	return c.post(ctx, fmt.Sprintf("/campaigns/%d/settings", campaignID), body)
}

func (c *Client) UpdateCampaignStatus(
	ctx context.Context,
	campaignID int,
	status CampaignStatus,
) (JSON, error) {
	if !status.Valid() {
		return nil, invalidParam("status", "enum", string(status),
			"status has a value the service does not accept")
	}

	body := map[string]any{"status": status}

	return c.post(ctx, fmt.Sprintf("/campaigns/%d/status", campaignID), body)
}

// StatisticsParams pages and filters campaign statistics. Limit is
// capped at 100 by the upstream; sequence numbers run 0 through 4.
type StatisticsParams struct {
	Offset              int         `json:"offset" validate:"gte=0"`
	Limit               int         `json:"limit" validate:"gte=0,lte=100"`
	EmailSequenceNumber *int        `json:"email_sequence_number,omitempty" validate:"omitempty,gte=0,lte=4"`
	EmailStatus         EmailStatus `json:"email_status,omitempty" validate:"omitempty,enum"`
}

func (c *Client) CampaignStatistics(
	ctx context.Context,
	campaignID int,
	params StatisticsParams,
) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("offset", strconv.Itoa(params.Offset))
	query.Set("limit", strconv.Itoa(params.Limit))

	if params.EmailSequenceNumber != nil {
		query.Set("email_sequence_number", strconv.Itoa(*params.EmailSequenceNumber))
	}

	if params.EmailStatus != "" {
		query.Set("email_status", string(params.EmailStatus))
	}

	return c.get(ctx, fmt.Sprintf("/campaigns/%d/statistics", campaignID), query)
}

// CampaignAnalytics fetches the top-level analytical summary of a
// campaign.
func (c *Client) CampaignAnalytics(ctx context.Context, campaignID int) (JSON, error) {
	return c.get(ctx, fmt.Sprintf("/campaigns/%d/analytics", campaignID), nil)
}

const analyticsDateFormat = "2006-01-02"

func (c *Client) CampaignAnalyticsByDate(
	ctx context.Context,
	campaignID int,
	startDate time.Time,
	endDate time.Time,
) (JSON, error) {
	if startDate.After(endDate) {
		return nil, invalidParam("start_date", "lte", startDate.Format(analyticsDateFormat),
			"start_date must not be after end_date")
	}

	query := url.Values{}
	query.Set("start_date", startDate.Format(analyticsDateFormat))
	query.Set("end_date", endDate.Format(analyticsDateFormat))

	return c.get(ctx, fmt.Sprintf("/campaigns/%d/analytics-by-date", campaignID), query)
}
