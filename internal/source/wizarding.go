package source

import (
	"context"
	"time"

	"github.com/owlpost/lumos/internal/model"
)

// DefaultWizardingBaseURL is the public characters-and-spells API.
const DefaultWizardingBaseURL = "https://hp-api.onrender.com/api"

// WizardingAPI fetches characters and spells.
type WizardingAPI struct {
	client *Client
}

// NewWizardingAPI creates an adapter for the wizarding API.
func NewWizardingAPI(baseURL string, timeout time.Duration) *WizardingAPI {
	if baseURL == "" {
		baseURL = DefaultWizardingBaseURL
	}
	return &WizardingAPI{client: NewClient(baseURL, timeout)}
}

// NewWizardingAPIWithClient wires a prebuilt client, used by tests.
func NewWizardingAPIWithClient(client *Client) *WizardingAPI {
	return &WizardingAPI{client: client}
}

// Characters fetches the full character collection.
func (w *WizardingAPI) Characters(ctx context.Context) ([]model.Character, error) {
	var characters []model.Character
	if err := w.client.Get(ctx, "/characters", &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

// Students fetches characters flagged as Hogwarts students.
func (w *WizardingAPI) Students(ctx context.Context) ([]model.Character, error) {
	var characters []model.Character
	if err := w.client.Get(ctx, "/characters/students", &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

// Staff fetches characters flagged as Hogwarts staff.
func (w *WizardingAPI) Staff(ctx context.Context) ([]model.Character, error) {
	var characters []model.Character
	if err := w.client.Get(ctx, "/characters/staff", &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

// CharacterByID fetches a single character. The upstream endpoint answers
// with a one-element array; an empty array maps to a 404-shaped RemoteError.
func (w *WizardingAPI) CharacterByID(ctx context.Context, id string) (*model.Character, error) {
	endpoint := "/character/" + id
	var characters []model.Character
	if err := w.client.Get(ctx, endpoint, &characters); err != nil {
		return nil, err
	}
	if len(characters) == 0 {
		return nil, &RemoteError{Endpoint: endpoint, Status: 404}
	}
	return &characters[0], nil
}

// Spells fetches the full spell collection.
func (w *WizardingAPI) Spells(ctx context.Context) ([]model.Spell, error) {
	var spells []model.Spell
	if err := w.client.Get(ctx, "/spells", &spells); err != nil {
		return nil, err
	}
	return spells, nil
}
