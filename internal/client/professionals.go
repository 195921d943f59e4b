package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"augebit/internal/entities"
)

// Professionals fetches the bookable professionals served by the API, in
// display order.
func (c *Client) Professionals(ctx context.Context) ([]entities.Professional, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/profissionais"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch professionals: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch professionals: status %d", resp.StatusCode)
	}

	var out struct {
		Profissionais []entities.Professional `json:"profissionais"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode professionals: %w", err)
	}
	return out.Profissionais, nil
}
