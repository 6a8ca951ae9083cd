package source

import (
	"context"
	"fmt"
	"time"

	"github.com/owlpost/lumos/internal/model"
)

// DefaultPotionsBaseURL is the public potions API.
const DefaultPotionsBaseURL = "https://api.potterdb.com/v1"

// potionPage is the JSON:API envelope the potions API answers with.
type potionPage struct {
	Data []model.Potion `json:"data"`
	Meta struct {
		Pagination struct {
			Current int `json:"current"`
			Last    int `json:"last"`
		} `json:"pagination"`
	} `json:"meta"`
}

type potionSingle struct {
	Data model.Potion `json:"data"`
}

// PotionsAPI fetches potions.
type PotionsAPI struct {
	client *Client
}

// NewPotionsAPI creates an adapter for the potions API.
func NewPotionsAPI(baseURL string, timeout time.Duration) *PotionsAPI {
	if baseURL == "" {
		baseURL = DefaultPotionsBaseURL
	}
	return &PotionsAPI{client: NewClient(baseURL, timeout)}
}

// NewPotionsAPIWithClient wires a prebuilt client, used by tests.
func NewPotionsAPIWithClient(client *Client) *PotionsAPI {
	return &PotionsAPI{client: client}
}

// Potions fetches the full potion collection, walking the upstream's
// pagination until the last page. A failure on any page fails the whole
// fetch — partial collections are never returned.
func (p *PotionsAPI) Potions(ctx context.Context) ([]model.Potion, error) {
	var all []model.Potion

	for page := 1; ; page++ {
		var envelope potionPage
		endpoint := fmt.Sprintf("/potions?page[number]=%d", page)
		if err := p.client.Get(ctx, endpoint, &envelope); err != nil {
			return nil, err
		}

		all = append(all, envelope.Data...)

		if envelope.Meta.Pagination.Last == 0 || page >= envelope.Meta.Pagination.Last {
			break
		}
	}

	return all, nil
}

// PotionByID fetches a single potion.
func (p *PotionsAPI) PotionByID(ctx context.Context, id string) (*model.Potion, error) {
	var envelope potionSingle
	if err := p.client.Get(ctx, "/potions/"+id, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}
