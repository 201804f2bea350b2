package smartlead

import (
	"context"
	"fmt"
)

// CampaignWebhooks fetches the webhooks registered on a campaign.
func (c *Client) CampaignWebhooks(ctx context.Context, campaignID int) (JSON, error) {
	return c.get(ctx, fmt.Sprintf("/campaigns/%d/webhooks", campaignID), nil)
}

// WebhookParams creates a webhook, or updates one when ID is set.
type WebhookParams struct {
	ID         *int               `json:"id,omitempty"`
	Name       string             `json:"name" validate:"required"`
	WebhookURL string             `json:"webhook_url" validate:"required,url"`
	EventTypes []WebhookEventType `json:"event_types" validate:"required,min=1,dive,enum"`
	Categories []string           `json:"categories"`
}

func (c *Client) UpsertCampaignWebhook(
	ctx context.Context,
	campaignID int,
	params WebhookParams,
) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return c.post(ctx, fmt.Sprintf("/campaigns/%d/webhooks", campaignID), params)
}

func (c *Client) DeleteCampaignWebhook(
	ctx context.Context,
	campaignID int,
	webhookID int,
) (JSON, error) {
	body := map[string]any{"id": webhookID}

	return c.del(ctx, fmt.Sprintf("/campaigns/%d/webhooks", campaignID), body)
}
