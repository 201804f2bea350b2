package smartlead

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ExportedLead is one row of the campaign leads export with the
// columns the upstream types as numbers, booleans or embedded JSON
// already coerced; everything else stays a string.
type ExportedLead map[string]any

var (
	exportIntColumns = map[string]bool{
		"id":                       true,
		"campaign_lead_map_id":     true,
		"last_email_sequence_sent": true,
		"open_count":               true,
		"click_count":              true,
		"reply_count":              true,
	}

	exportJSONColumns = map[string]bool{
		"custom_fields":              true,
		"unsubscribed_client_id_map": true,
	}

	exportBoolColumns = map[string]bool{
		"is_interested":   true,
		"is_unsubscribed": true,
	}
)

// ExportCampaignLeads downloads the leads export of a campaign. This is
// the one endpoint that answers with CSV instead of JSON, so the rows
// are parsed here rather than passed through.
func (c *Client) ExportCampaignLeads(ctx context.Context, campaignID int) ([]ExportedLead, error) {
	raw, err := c.send(ctx, http.MethodGet,
		fmt.Sprintf("/campaigns/%d/leads-export", campaignID), nil, nil)
	if err != nil {
		return nil, err
	}

	return parseLeadsExport(raw)
}

func parseLeadsExport(raw []byte) ([]ExportedLead, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	headings := records[0]
	rows := make([]ExportedLead, 0, len(records)-1)

	for _, record := range records[1:] {
		row := make(ExportedLead, len(headings))

		for i, key := range headings {
			if i >= len(record) {
				break
			}

			val, err := coerceExportColumn(key, record[i])
			if err != nil {
				return nil, err
			}

			row[key] = val
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func coerceExportColumn(key, val string) (any, error) {
	switch {
	case exportIntColumns[key]:
		if val == "" {
			return 0, nil
		}

		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("%w: column %q: %w", ErrDecodeResponse, key, err)
		}

		return n, nil

	case exportJSONColumns[key]:
		var decoded any
		if err := json.Unmarshal([]byte(val), &decoded); err != nil {
			return nil, fmt.Errorf("%w: column %q: %w", ErrDecodeResponse, key, err)
		}

		return decoded, nil

	case exportBoolColumns[key]:
		return strings.EqualFold(val, "true"), nil

	default:
		return val, nil
	}
}
