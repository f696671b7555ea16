package influmatch

import (
	"context"
	"fmt"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
)

// CampaignsService manages campaigns. Creation and mutation are
// brand-role operations; the backend enforces the role.
type CampaignsService struct {
	api *apiclient.Client
}

// CampaignInput carries the writable campaign fields.
type CampaignInput struct {
	Title          string         `json:"title,omitempty"`
	Description    string         `json:"description,omitempty"`
	Platform       string         `json:"platform,omitempty"`
	Category       string         `json:"category,omitempty"`
	Budget         float64        `json:"budget,omitempty"`
	StartDate      string         `json:"start_date,omitempty"`
	EndDate        string         `json:"end_date,omitempty"`
	Status         string         `json:"status,omitempty"`
	Requirements   map[string]any `json:"requirements,omitempty"`
	TargetAudience map[string]any `json:"target_audience,omitempty"`
}

// List returns every campaign visible to the caller.
func (s *CampaignsService) List(ctx context.Context) ([]Campaign, error) {
	return getJSON[[]Campaign](ctx, s.api, "/campaigns", nil)
}

// ListActive returns currently running campaigns.
func (s *CampaignsService) ListActive(ctx context.Context) ([]Campaign, error) {
	return getJSON[[]Campaign](ctx, s.api, "/campaigns/active", nil)
}

// Search finds campaigns matching the query text.
func (s *CampaignsService) Search(ctx context.Context, query string) ([]Campaign, error) {
	return getJSON[[]Campaign](ctx, s.api, "/campaigns/search", map[string]any{"q": query})
}

// ListByBrand returns a brand's campaigns.
func (s *CampaignsService) ListByBrand(ctx context.Context, brandID string) ([]Campaign, error) {
	return getJSON[[]Campaign](ctx, s.api, fmt.Sprintf("/campaigns/brand/%s", brandID), nil)
}

// Get returns one campaign by ID.
func (s *CampaignsService) Get(ctx context.Context, id string) (*Campaign, error) {
	campaign, err := getJSON[Campaign](ctx, s.api, fmt.Sprintf("/campaigns/%s", id), nil)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Create opens a new campaign.
func (s *CampaignsService) Create(ctx context.Context, input CampaignInput) (*Campaign, error) {
	campaign, err := postJSON[Campaign](ctx, s.api, "/campaigns", input)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Update patches campaign fields.
func (s *CampaignsService) Update(ctx context.Context, id string, input CampaignInput) (*Campaign, error) {
	campaign, err := patchJSON[Campaign](ctx, s.api, fmt.Sprintf("/campaigns/%s", id), input)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Delete removes a campaign.
func (s *CampaignsService) Delete(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, fmt.Sprintf("/campaigns/%s", id))
	return err
}
