package smartlead

import "context"

// Clients fetches every workspace client in the account.
func (c *Client) Clients(ctx context.Context) (JSON, error) {
	return c.get(ctx, "/client", nil)
}

// ClientParams registers a new workspace client. The upstream field is
// the singular "permission" even though it carries a list.
type ClientParams struct {
	Name        string             `json:"name" validate:"required"`
	Email       string             `json:"email" validate:"required,email"`
	Permissions []ClientPermission `json:"permission" validate:"required,min=1,dive,enum"`
	Logo        string             `json:"logo"`
	LogoURL     *string            `json:"logo_url,omitempty"`
	Password    string             `json:"password" validate:"required"`
}

func (c *Client) AddClient(ctx context.Context, params ClientParams) (JSON, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return c.post(ctx, "/client/save", params)
}
