package smartlead

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// maxPageLimit is the largest page size the upstream accepts for lead
// and email-account listings.
const maxPageLimit = 100

// CampaignLeads fetches one page of leads for a campaign. The response
// carries total_leads alongside the data page; walking further pages is
// up to the caller.
func (c *Client) CampaignLeads(
	ctx context.Context,
	campaignID int,
	offset int,
	limit int,
) (JSON, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	return c.get(ctx, fmt.Sprintf("/campaigns/%d/leads", campaignID), query)
}

func validatePage(offset, limit int) error {
	if offset < 0 {
		return invalidParam("offset", "gte", strconv.Itoa(offset),
			"offset must be greater than or equal to 0")
	}

	if limit < 0 || limit > maxPageLimit {
		return invalidParam("limit", "lte", strconv.Itoa(limit),
			fmt.Sprintf("limit must be between 0 and %d", maxPageLimit))
	}

	return nil
}

// LeadCategories fetches every lead category defined in the account.
func (c *Client) LeadCategories(ctx context.Context) (JSON, error) {
	return c.get(ctx, "/leads/fetch-categories", nil)
}

func (c *Client) LeadByEmail(ctx context.Context, email string) (JSON, error) {
	if strings.TrimSpace(email) == "" {
		return nil, invalidParam("email", "required", email, "email is required")
	}

	query := url.Values{}
	query.Set("email", email)

	return c.get(ctx, "/leads/", query)
}

// CampaignsForLead fetches every campaign the given lead belongs to.
func (c *Client) CampaignsForLead(ctx context.Context, leadID int) (JSON, error) {
	return c.get(ctx, fmt.Sprintf("/leads/%d/campaigns", leadID), nil)
}

func (c *Client) LeadMessageHistory(
	ctx context.Context,
	campaignID int,
	leadID int,
) (JSON, error) {
	return c.get(ctx,
		fmt.Sprintf("/campaigns/%d/leads/%d/message-history", campaignID, leadID), nil)
}

func (c *Client) PauseLead(ctx context.Context, campaignID, leadID int) (JSON, error) {
	return c.post(ctx, fmt.Sprintf("/campaigns/%d/leads/%d/pause", campaignID, leadID), nil)
}

func (c *Client) ResumeLead(ctx context.Context, campaignID, leadID int) (JSON, error) {
	return c.post(ctx, fmt.Sprintf("/campaigns/%d/leads/%d/resume", campaignID, leadID), nil)
}

func (c *Client) DeleteLead(ctx context.Context, campaignID, leadID int) (JSON, error) {
	return c.del(ctx, fmt.Sprintf("/campaigns/%d/leads/%d", campaignID, leadID), nil)
}

func (c *Client) UnsubscribeLead(ctx context.Context, campaignID, leadID int) (JSON, error) {
	return c.post(ctx, fmt.Sprintf("/campaigns/%d/leads/%d/unsubscribe", campaignID, leadID), nil)
}

type LeadCategoryParams struct {
	CategoryID int  `json:"category_id" validate:"required"`
	PauseLead  bool `json:"pause_lead"`
}

func (c *Client) UpdateLeadCategory(
	ctx context.Context,
	campaignID int,
	leadID int,
	params LeadCategoryParams,
) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return c.post(ctx,
		fmt.Sprintf("/campaigns/%d/leads/%d/category", campaignID, leadID), params)
}

// Lead is one prospect to add to a campaign. Custom fields ride along
// as-is and become template variables on the upstream side.
type Lead struct {
	FirstName       string            `json:"first_name,omitempty"`
	LastName        string            `json:"last_name,omitempty"`
	Email           string            `json:"email" validate:"required,email"`
	PhoneNumber     string            `json:"phone_number,omitempty"`
	CompanyName     string            `json:"company_name,omitempty"`
	Website         string            `json:"website,omitempty"`
	Location        string            `json:"location,omitempty"`
	LinkedinProfile string            `json:"linkedin_profile,omitempty"`
	CompanyURL      string            `json:"company_url,omitempty"`
	CustomFields    map[string]string `json:"custom_fields,omitempty"`
}

type AddLeadsSettings struct {
	IgnoreGlobalBlockList               bool `json:"ignore_global_block_list"`
	IgnoreUnsubscribeList               bool `json:"ignore_unsubscribe_list"`
	IgnoreDuplicateLeadsInOtherCampaign bool `json:"ignore_duplicate_leads_in_other_campaign"`
}

// AddLeadsParams carries up to 100 leads per request, the upstream's
// per-call ceiling.
type AddLeadsParams struct {
	Leads    []Lead            `json:"lead_list" validate:"required,min=1,max=100,dive"`
	Settings *AddLeadsSettings `json:"settings,omitempty"`
}

func (c *Client) AddLeadsToCampaign(
	ctx context.Context,
	campaignID int,
	params AddLeadsParams,
) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return c.post(ctx, fmt.Sprintf("/campaigns/%d/leads", campaignID), params)
}

// BlockListParams adds email addresses or whole domains to the global
// block list. With ClientID set the entries only apply to that client.
type BlockListParams struct {
	Entries  []string `json:"domain_block_list" validate:"required,min=1"`
	ClientID *int     `json:"client_id,omitempty"`
}

func (c *Client) AddToGlobalBlockList(ctx context.Context, params BlockListParams) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return c.post(ctx, "/leads/add-domain-block-list", params)
}
