package influmatch

import (
	"context"
	"fmt"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
)

// SocialService manages a creator's connected platform accounts and their
// metrics.
type SocialService struct {
	api *apiclient.Client
}

// SocialConnectInput links a platform account with an already obtained
// access token.
type SocialConnectInput struct {
	Platform       string         `json:"platform"`
	AccessToken    string         `json:"access_token"`
	RefreshToken   string         `json:"refresh_token,omitempty"`
	PlatformUserID string         `json:"platform_user_id"`
	Username       string         `json:"username"`
	FollowersCount int64          `json:"followers_count,omitempty"`
	EngagementRate float64        `json:"engagement_rate,omitempty"`
	Metrics        map[string]any `json:"metrics,omitempty"`
}

// OAuthURL is the backend-prepared authorization redirect for a platform.
type OAuthURL struct {
	AuthURL string `json:"authUrl"`
	State   string `json:"state"`
}

// ConnectedPlatformList returns the creator's platforms split by
// connection state.
func (s *SocialService) ConnectedPlatformList(ctx context.Context) (*ConnectedPlatforms, error) {
	platforms, err := getJSON[ConnectedPlatforms](ctx, s.api, "/social/connected-platforms", nil)
	if err != nil {
		return nil, err
	}
	return &platforms, nil
}

// IsPlatformConnected reports whether the given platform is linked.
func (s *SocialService) IsPlatformConnected(ctx context.Context, platform string) (bool, error) {
	platforms, err := s.ConnectedPlatformList(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range platforms.Connected {
		if p.Platform == platform {
			return true, nil
		}
	}
	return false, nil
}

// Connect links a platform account using a manually supplied token.
func (s *SocialService) Connect(ctx context.Context, input SocialConnectInput) (*SocialAccount, error) {
	account, err := postJSON[SocialAccount](ctx, s.api, "/social/connect", input)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Disconnect unlinks a platform.
func (s *SocialService) Disconnect(ctx context.Context, platform string) error {
	_, err := s.api.Delete(ctx, fmt.Sprintf("/social/disconnect/%s", platform))
	return err
}

// Accounts lists the creator's connected accounts.
func (s *SocialService) Accounts(ctx context.Context) ([]SocialAccount, error) {
	return getJSON[[]SocialAccount](ctx, s.api, "/social/accounts", nil)
}

// Stats returns the raw social stats payload.
func (s *SocialService) Stats(ctx context.Context) (map[string]any, error) {
	return getJSON[map[string]any](ctx, s.api, "/social/stats", nil)
}

// Get returns one social account by ID.
func (s *SocialService) Get(ctx context.Context, id string) (*SocialAccount, error) {
	account, err := getJSON[SocialAccount](ctx, s.api, fmt.Sprintf("/social/%s", id), nil)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// AuthURL asks the backend to prepare an OAuth authorization URL for a
// platform. Some platforms expose a graph-API variant with richer scopes.
func (s *SocialService) AuthURL(ctx context.Context, platform string, useGraphAPI bool) (*OAuthURL, error) {
	var params map[string]any
	if useGraphAPI {
		params = map[string]any{"use_graph_api": true}
	}
	oauthURL, err := getJSON[OAuthURL](ctx, s.api, fmt.Sprintf("/oauth/%s/url", platform), params)
	if err != nil {
		return nil, err
	}
	return &oauthURL, nil
}

// RefreshToken renews the stored platform token.
func (s *SocialService) RefreshToken(ctx context.Context, platform string) (*SocialAccount, error) {
	account, err := postJSON[SocialAccount](ctx, s.api, fmt.Sprintf("/oauth/%s/refresh", platform), nil)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// RevokeToken revokes the platform's access grant.
func (s *SocialService) RevokeToken(ctx context.Context, platform string) error {
	_, err := s.api.Post(ctx, fmt.Sprintf("/oauth/%s/revoke", platform), nil)
	return err
}

// Sync refreshes one platform's metrics. Platform syncs go out to
// third-party APIs and can be slow; callers may pass a longer timeout.
func (s *SocialService) Sync(ctx context.Context, platform string, opts ...apiclient.CallOption) (*SyncResult, error) {
	result, err := postJSON[SyncResult](ctx, s.api, fmt.Sprintf("/social/sync/%s", platform), nil, opts...)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SyncAll refreshes every connected platform.
func (s *SocialService) SyncAll(ctx context.Context, opts ...apiclient.CallOption) (*SyncAllResult, error) {
	result, err := postJSON[SyncAllResult](ctx, s.api, "/social/sync/all", nil, opts...)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AggregatedStats rolls metrics up across platforms.
func (s *SocialService) AggregatedStats(ctx context.Context) (*AggregatedStats, error) {
	stats, err := getJSON[AggregatedStats](ctx, s.api, "/social/aggregated-stats", nil)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// MetricsHistory returns historical snapshots, optionally filtered to one
// platform, over the trailing number of days (default 30).
func (s *SocialService) MetricsHistory(ctx context.Context, platform string, days int) ([]MetricsHistory, error) {
	if days <= 0 {
		days = 30
	}
	params := map[string]any{"days": days}
	if platform != "" {
		params["platform"] = platform
	}
	return getJSON[[]MetricsHistory](ctx, s.api, "/social/metrics/history", params)
}
