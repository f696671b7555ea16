package influmatch

import (
	"context"
	"fmt"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
)

// CreatorsService manages creator profiles and the creator side of
// collaborations.
type CreatorsService struct {
	api *apiclient.Client
}

// CreatorInput carries the writable creator-profile fields.
type CreatorInput struct {
	Bio         string       `json:"bio,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Location    string       `json:"location,omitempty"`
	AvatarURL   string       `json:"avatar_url,omitempty"`
	SocialLinks *SocialLinks `json:"social_links,omitempty"`
	Categories  []string     `json:"categories,omitempty"`
	Languages   []string     `json:"languages,omitempty"`
}

// CreatorStats is the dashboard summary for the current creator. The
// backend evolves this payload freely, so it stays schemaless.
type CreatorStats map[string]any

// Create registers a creator profile for the current account.
func (s *CreatorsService) Create(ctx context.Context, input CreatorInput) (*Creator, error) {
	creator, err := postJSON[Creator](ctx, s.api, "/creators", input)
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// List returns every creator visible to the caller.
func (s *CreatorsService) List(ctx context.Context) ([]Creator, error) {
	return getJSON[[]Creator](ctx, s.api, "/creators", nil)
}

// Search finds creators matching the query text.
func (s *CreatorsService) Search(ctx context.Context, query string) ([]Creator, error) {
	return getJSON[[]Creator](ctx, s.api, "/creators/search", map[string]any{"q": query})
}

// Me returns the current account's creator profile.
func (s *CreatorsService) Me(ctx context.Context) (*Creator, error) {
	creator, err := getJSON[Creator](ctx, s.api, "/creators/me", nil)
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// Get returns one creator by ID.
func (s *CreatorsService) Get(ctx context.Context, id string) (*Creator, error) {
	creator, err := getJSON[Creator](ctx, s.api, fmt.Sprintf("/creators/%s", id), nil)
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// Update patches creator-profile fields.
func (s *CreatorsService) Update(ctx context.Context, id string, input CreatorInput) (*Creator, error) {
	creator, err := patchJSON[Creator](ctx, s.api, fmt.Sprintf("/creators/%s", id), input)
	if err != nil {
		return nil, err
	}
	return &creator, nil
}

// Delete removes a creator profile.
func (s *CreatorsService) Delete(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, fmt.Sprintf("/creators/%s", id))
	return err
}

// MyStats returns the current creator's dashboard summary.
func (s *CreatorsService) MyStats(ctx context.Context) (CreatorStats, error) {
	return getJSON[CreatorStats](ctx, s.api, "/creators/me/stats", nil)
}

// RecentCollaborations returns the current creator's most recent
// collaborations, newest first.
func (s *CreatorsService) RecentCollaborations(ctx context.Context, limit int) ([]Collaboration, error) {
	if limit <= 0 {
		limit = 5
	}
	return getJSON[[]Collaboration](ctx, s.api, "/creators/me/collaborations", map[string]any{
		"limit":  limit,
		"recent": true,
	})
}

// RecommendedCampaigns returns campaigns matched to the current creator.
func (s *CreatorsService) RecommendedCampaigns(ctx context.Context) ([]Campaign, error) {
	return getJSON[[]Campaign](ctx, s.api, "/creators/me/recommended-campaigns", nil)
}

// Collaboration returns one collaboration by ID.
func (s *CreatorsService) Collaboration(ctx context.Context, id string) (*Collaboration, error) {
	collab, err := getJSON[Collaboration](ctx, s.api, fmt.Sprintf("/creators/collaborations/%s", id), nil)
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// AcceptCollaboration accepts a pending collaboration, optionally with a
// counter offer (pass 0 for none).
func (s *CreatorsService) AcceptCollaboration(ctx context.Context, id string, counterOffer float64) (*Collaboration, error) {
	body := map[string]any{}
	if counterOffer > 0 {
		body["counter_offer"] = counterOffer
	}
	collab, err := postJSON[Collaboration](ctx, s.api, fmt.Sprintf("/creators/collaborations/%s/accept", id), body)
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// RejectCollaboration declines a pending collaboration with a reason.
func (s *CreatorsService) RejectCollaboration(ctx context.Context, id, reason string) (*Collaboration, error) {
	collab, err := postJSON[Collaboration](ctx, s.api, fmt.Sprintf("/creators/collaborations/%s/reject", id), map[string]any{
		"reason": reason,
	})
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// GenerateAIReport asks the backend to produce an AI performance report for
// a collaboration. Generation can take a while; callers may want a longer
// per-call timeout.
func (s *CreatorsService) GenerateAIReport(ctx context.Context, id string, opts ...apiclient.CallOption) (*AIAnalysis, error) {
	report, err := postJSON[AIAnalysis](ctx, s.api, fmt.Sprintf("/creators/collaborations/%s/generate-ai-report", id), nil, opts...)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
