package influmatch

import (
	"context"
	"fmt"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
)

// MatchingService is the AI matching surface: ranked creator shortlists per
// campaign, detailed pair analyses, and collaboration requests.
type MatchingService struct {
	api *apiclient.Client
}

// CollaborationRequest is a brand's offer to a creator.
type CollaborationRequest struct {
	ProposedBudget float64        `json:"proposed_budget,omitempty"`
	Message        string         `json:"message,omitempty"`
	Deliverables   map[string]any `json:"deliverables,omitempty"`
	Deadline       string         `json:"deadline,omitempty"`
}

// CampaignCreators returns the ranked creator shortlist for a campaign.
func (s *MatchingService) CampaignCreators(ctx context.Context, campaignID string) ([]CreatorMatch, error) {
	return getJSON[[]CreatorMatch](ctx, s.api, fmt.Sprintf("/matching/campaign/%s/creators", campaignID), nil)
}

// DetailedAnalysis returns the full match report for one campaign/creator
// pair.
func (s *MatchingService) DetailedAnalysis(ctx context.Context, campaignID, creatorID string) (*DetailedAnalysis, error) {
	analysis, err := getJSON[DetailedAnalysis](ctx, s.api, fmt.Sprintf("/matching/campaign/%s/creator/%s/analysis", campaignID, creatorID), nil)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// CreateCollaboration sends a collaboration request from a campaign to a
// creator.
func (s *MatchingService) CreateCollaboration(ctx context.Context, campaignID, creatorID string, req CollaborationRequest) (*Collaboration, error) {
	collab, err := postJSON[Collaboration](ctx, s.api, fmt.Sprintf("/matching/campaign/%s/creator/%s/request", campaignID, creatorID), req)
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// CampaignCollaborations lists a campaign's collaborations.
func (s *MatchingService) CampaignCollaborations(ctx context.Context, campaignID string) ([]Collaboration, error) {
	return getJSON[[]Collaboration](ctx, s.api, fmt.Sprintf("/matching/campaign/%s/collaborations", campaignID), nil)
}

// CreatorCampaigns returns campaigns recommended for a creator.
func (s *MatchingService) CreatorCampaigns(ctx context.Context, creatorID string) ([]Campaign, error) {
	return getJSON[[]Campaign](ctx, s.api, fmt.Sprintf("/matching/creator/%s/campaigns", creatorID), nil)
}

// DownloadReport saves the pair's PDF match report into destDir and returns
// the written path. The filename follows the response's
// Content-Disposition, falling back to a dated default.
func (s *MatchingService) DownloadReport(ctx context.Context, campaignID, creatorID, destDir string) (string, error) {
	endpoint := fmt.Sprintf("/matching/campaign/%s/creator/%s/download-report", campaignID, creatorID)
	path, err := s.api.DownloadFile(ctx, endpoint, destDir, "")
	if err != nil {
		return "", err
	}
	return path, nil
}
