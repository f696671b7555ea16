package influmatch

import (
	"context"
	"fmt"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
)

// AnalyticsService serves the creator dashboard: cross-platform metrics,
// campaign performance, and earnings.
type AnalyticsService struct {
	api *apiclient.Client
}

// AIInsights is the model-generated portion of the dashboard.
type AIInsights struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// CampaignAnalyticsFilter narrows the campaign analytics view. Zero values
// are omitted from the query.
type CampaignAnalyticsFilter struct {
	Status   string
	Platform string
	DateFrom string
	DateTo   string
}

// Overview returns the full dashboard payload in one call.
func (s *AnalyticsService) Overview(ctx context.Context) (*OverallAnalytics, error) {
	overview, err := getJSON[OverallAnalytics](ctx, s.api, "/analytics/overview", nil)
	if err != nil {
		return nil, err
	}
	return &overview, nil
}

// Platform returns the breakdown for one platform.
func (s *AnalyticsService) Platform(ctx context.Context, platform string) (*PlatformAnalytics, error) {
	analytics, err := getJSON[PlatformAnalytics](ctx, s.api, fmt.Sprintf("/analytics/platform/%s", platform), nil)
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

// Campaigns returns campaign performance, optionally filtered.
func (s *AnalyticsService) Campaigns(ctx context.Context, filter CampaignAnalyticsFilter) (*CampaignAnalytics, error) {
	params := map[string]any{}
	if filter.Status != "" {
		params["status"] = filter.Status
	}
	if filter.Platform != "" {
		params["platform"] = filter.Platform
	}
	if filter.DateFrom != "" {
		params["date_from"] = filter.DateFrom
	}
	if filter.DateTo != "" {
		params["date_to"] = filter.DateTo
	}
	if len(params) == 0 {
		params = nil
	}
	analytics, err := getJSON[CampaignAnalytics](ctx, s.api, "/analytics/campaigns", params)
	if err != nil {
		return nil, err
	}
	return &analytics, nil
}

// Earnings summarizes income over the given period: month, quarter, year,
// or all (the default).
func (s *AnalyticsService) Earnings(ctx context.Context, period string) (*EarningsAnalytics, error) {
	if period == "" {
		period = "all"
	}
	earnings, err := getJSON[EarningsAnalytics](ctx, s.api, "/analytics/earnings", map[string]any{"period": period})
	if err != nil {
		return nil, err
	}
	return &earnings, nil
}

// EngagementTrends returns the engagement time series over the trailing
// number of days (default 30).
func (s *AnalyticsService) EngagementTrends(ctx context.Context, days int) ([]EngagementTrend, error) {
	if days <= 0 {
		days = 30
	}
	return getJSON[[]EngagementTrend](ctx, s.api, "/analytics/trends", map[string]any{"days": days})
}

// FollowerGrowth returns the per-platform follower time series over the
// trailing number of days (default 30).
func (s *AnalyticsService) FollowerGrowth(ctx context.Context, days int) ([]FollowerGrowth, error) {
	if days <= 0 {
		days = 30
	}
	return getJSON[[]FollowerGrowth](ctx, s.api, "/analytics/followers/growth", map[string]any{"days": days})
}

// AIInsights returns model-generated observations and recommendations.
// Generation can take a while on cold caches; callers may pass a longer
// timeout.
func (s *AnalyticsService) AIInsights(ctx context.Context, opts ...apiclient.CallOption) (*AIInsights, error) {
	insights, err := getJSON[AIInsights](ctx, s.api, "/analytics/ai-insights", nil, opts...)
	if err != nil {
		return nil, err
	}
	return &insights, nil
}

// Export downloads the analytics report in the given format (pdf or csv)
// into destDir and returns the written path.
func (s *AnalyticsService) Export(ctx context.Context, format, destDir string) (string, error) {
	if format == "" {
		format = "pdf"
	}
	endpoint := fmt.Sprintf("/analytics/export?format=%s", format)
	return s.api.DownloadFile(ctx, endpoint, destDir, fmt.Sprintf("analytics-report.%s", format))
}

// Compare contrasts the current period's analytics with the previous one.
func (s *AnalyticsService) Compare(ctx context.Context, period string) (*AnalyticsComparison, error) {
	if period == "" {
		period = "month"
	}
	comparison, err := getJSON[AnalyticsComparison](ctx, s.api, "/analytics/compare", map[string]any{"period": period})
	if err != nil {
		return nil, err
	}
	return &comparison, nil
}
