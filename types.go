package influmatch

import "github.com/influmatch/influmatch-go/pkg/session"

// Campaign is a brand's influencer-marketing campaign.
type Campaign struct {
	ID             string         `json:"id"`
	BrandID        string         `json:"brand_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Platform       string         `json:"platform"` // instagram, youtube, tiktok, twitter
	Category       string         `json:"category"`
	Budget         float64        `json:"budget"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	Status         string         `json:"status"` // draft, active, paused, completed, cancelled
	Requirements   map[string]any `json:"requirements,omitempty"`
	TargetAudience map[string]any `json:"target_audience,omitempty"`
	TotalCreators  int            `json:"total_creators"`
	TotalReach     int64          `json:"total_reach"`
	TotalSpent     float64        `json:"total_spent"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}

// SocialLinks holds a creator's public profile URLs per platform.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Creator is an influencer profile.
type Creator struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	Bio            string        `json:"bio,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Location       string        `json:"location,omitempty"`
	AvatarURL      string        `json:"avatar_url,omitempty"`
	SocialLinks    *SocialLinks  `json:"social_links,omitempty"`
	OverallRating  float64       `json:"overall_rating"`
	TotalCampaigns int           `json:"total_campaigns"`
	TotalEarnings  float64       `json:"total_earnings"`
	Categories     []string      `json:"categories"`
	Languages      []string      `json:"languages"`
	IsActive       bool          `json:"is_active"`
	IsVerified     bool          `json:"is_verified"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
	User           *session.User `json:"user,omitempty"`
}

// Brand is a company profile running campaigns.
type Brand struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	CompanyName    string  `json:"company_name"`
	Website        string  `json:"website,omitempty"`
	Industry       string  `json:"industry,omitempty"`
	Description    string  `json:"description,omitempty"`
	LogoURL        string  `json:"logo_url,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Address        string  `json:"address,omitempty"`
	TotalCampaigns int     `json:"total_campaigns"`
	TotalSpent     float64 `json:"total_spent"`
	IsActive       bool    `json:"is_active"`
	IsVerified     bool    `json:"is_verified"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// Payment is one money movement between a brand, the platform, and a
// creator.
type Payment struct {
	ID             string         `json:"id"`
	CampaignID     string         `json:"campaign_id"`
	CreatorID      string         `json:"creator_id"`
	Amount         float64        `json:"amount"`
	PaymentType    string         `json:"payment_type"` // campaign_payment, platform_fee, refund
	Status         string         `json:"status"`       // pending, processing, completed, failed, refunded
	TransactionID  string         `json:"transaction_id,omitempty"`
	PaymentGateway string         `json:"payment_gateway,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	ProcessedAt    string         `json:"processed_at,omitempty"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}

// Collaboration links a campaign and a creator through the request /
// accept / deliver lifecycle.
type Collaboration struct {
	ID               string         `json:"id"`
	CampaignID       string         `json:"campaign_id"`
	CreatorID        string         `json:"creator_id"`
	Status           string         `json:"status"` // pending, accepted, rejected, completed, cancelled
	ProposedBudget   float64        `json:"proposed_budget,omitempty"`
	Message          string         `json:"message,omitempty"`
	Deliverables     map[string]any `json:"deliverables,omitempty"`
	Deadline         string         `json:"deadline,omitempty"`
	RejectionReason  string         `json:"rejection_reason,omitempty"`
	PaymentCompleted bool           `json:"payment_completed"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
	Creator          *Creator       `json:"creator,omitempty"`
	Campaign         *Campaign      `json:"campaign,omitempty"`
}

// MatchAnalysis scores how well a creator fits a campaign.
type MatchAnalysis struct {
	Score           float64  `json:"score"`
	Reasons         []string `json:"reasons"`
	Strengths       []string `json:"strengths"`
	Concerns        []string `json:"concerns"`
	AudienceOverlap float64  `json:"audienceOverlap"`
	BudgetFit       string   `json:"budgetFit"`
	ExperienceLevel string   `json:"experienceLevel"`
	EstimatedROI    float64  `json:"estimatedROI"`
}

// CreatorMatch is one ranked entry in a campaign's creator shortlist.
type CreatorMatch struct {
	Creator    Creator       `json:"creator"`
	MatchScore float64       `json:"matchScore"`
	Analysis   MatchAnalysis `json:"analysis"`
	Rank       int           `json:"rank"`
}

// RiskAssessment is the AI model's risk breakdown for one pairing.
type RiskAssessment struct {
	RiskLevel            string   `json:"risk_level"`
	RiskFactors          []string `json:"risk_factors"`
	MitigationStrategies []string `json:"mitigation_strategies"`
}

// AIAnalysis is the persisted model output for one campaign/creator pair.
type AIAnalysis struct {
	ID                  int64           `json:"id"`
	CampaignID          string          `json:"campaign_id"`
	CreatorID           string          `json:"creator_id"`
	MatchScore          float64         `json:"match_score"`
	MLMatchScore        float64         `json:"ml_match_score,omitempty"`
	DLMatchScore        float64         `json:"dl_match_score,omitempty"`
	EstimatedROI        float64         `json:"estimated_roi,omitempty"`
	SuccessProbability  float64         `json:"success_probability,omitempty"`
	PredictedEngagement float64         `json:"predicted_engagement,omitempty"`
	AudienceOverlap     float64         `json:"audience_overlap,omitempty"`
	Strengths           []string        `json:"strengths"`
	Concerns            []string        `json:"concerns"`
	Reasons             []string        `json:"reasons"`
	AISummary           string          `json:"ai_summary,omitempty"`
	AIRecommendations   []string        `json:"ai_recommendations,omitempty"`
	FullReport          string          `json:"full_report,omitempty"`
	RiskAssessment      *RiskAssessment `json:"risk_assessment,omitempty"`
	ModelVersion        string          `json:"model_version,omitempty"`
	ConfidenceLevel     string          `json:"confidence_level,omitempty"`
	CreatedAt           string          `json:"created_at"`
	UpdatedAt           string          `json:"updated_at"`
}

// DetailedAnalysis is the full match report for one campaign/creator pair.
type DetailedAnalysis struct {
	Creator         Creator       `json:"creator"`
	Campaign        Campaign      `json:"campaign"`
	Analysis        MatchAnalysis `json:"analysis"`
	Recommendations []string      `json:"recommendations"`
	Comparisons     struct {
		IndustryAverageBudget float64 `json:"industryAverageBudget"`
		IndustryAverageReach  float64 `json:"industryAverageReach"`
		CreatorPositioning    string  `json:"creatorPositioning"`
	} `json:"comparisons"`
	AIAnalysis *AIAnalysis `json:"aiAnalysis,omitempty"`
}

// SocialAccount is one connected platform account of a creator.
type SocialAccount struct {
	ID             string         `json:"id"`
	CreatorID      string         `json:"creator_id"`
	Platform       string         `json:"platform"`
	PlatformUserID string         `json:"platform_user_id"`
	Username       string         `json:"username"`
	FollowersCount int64          `json:"followers_count"`
	EngagementRate float64        `json:"engagement_rate"`
	Metrics        map[string]any `json:"metrics,omitempty"`
	IsConnected    bool           `json:"is_connected"`
	LastSyncedAt   string         `json:"last_synced_at,omitempty"`
	TokenExpiresAt string         `json:"token_expires_at,omitempty"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}

// SyncResult reports one platform's metrics refresh.
type SyncResult struct {
	Success  bool           `json:"success"`
	Platform string         `json:"platform"`
	Metrics  map[string]any `json:"metrics,omitempty"`
	Error    string         `json:"error,omitempty"`
	SyncedAt string         `json:"synced_at"`
}

// SyncAllResult aggregates a refresh across every connected platform.
type SyncAllResult struct {
	Success            bool         `json:"success"`
	Message            string       `json:"message"`
	Results            []SyncResult `json:"results"`
	ConnectedCount     int          `json:"connected_count"`
	ConnectedPlatforms []string     `json:"connected_platforms,omitempty"`
}

// ConnectedPlatform summarizes one linked account.
type ConnectedPlatform struct {
	Platform       string `json:"platform"`
	Username       string `json:"username"`
	LastSyncedAt   string `json:"last_synced_at"`
	FollowersCount int64  `json:"followers_count"`
}

// ConnectedPlatforms splits the creator's platforms by connection state.
type ConnectedPlatforms struct {
	Connected    []ConnectedPlatform `json:"connected"`
	Disconnected []string            `json:"disconnected"`
}

// AggregatedStats rolls social metrics up across platforms.
type AggregatedStats struct {
	TotalFollowers         int64          `json:"total_followers"`
	TotalReach             int64          `json:"total_reach"`
	AvgEngagementRate      float64        `json:"avg_engagement_rate"`
	WeightedEngagementRate float64        `json:"weighted_engagement_rate"`
	PlatformsConnected     int            `json:"platforms_connected"`
	PrimaryPlatform        string         `json:"primary_platform,omitempty"`
	OverallQualityScore    float64        `json:"overall_quality_score"`
	ByPlatform             map[string]any `json:"by_platform"`
}

// MetricsHistory is one historical snapshot of a social account.
type MetricsHistory struct {
	ID             string  `json:"id"`
	SocialAccount  string  `json:"social_account_id"`
	FollowersCount int64   `json:"followers_count"`
	EngagementRate float64 `json:"engagement_rate"`
	Impressions    int64   `json:"impressions,omitempty"`
	Reach          int64   `json:"reach,omitempty"`
	AvgLikes       float64 `json:"avg_likes,omitempty"`
	AvgComments    float64 `json:"avg_comments,omitempty"`
	AvgViews       float64 `json:"avg_views,omitempty"`
	QualityScore   float64 `json:"quality_score,omitempty"`
	RecordedAt     string  `json:"recorded_at"`
}

// TopContent is one high-performing post.
type TopContent struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Thumbnail      string  `json:"thumbnail,omitempty"`
	Views          int64   `json:"views"`
	Likes          int64   `json:"likes"`
	Comments       int64   `json:"comments"`
	EngagementRate float64 `json:"engagement_rate"`
	PublishedAt    string  `json:"published_at"`
	URL            string  `json:"url,omitempty"`
}

// PlatformAnalytics is the per-platform analytics breakdown.
type PlatformAnalytics struct {
	Platform       string       `json:"platform"`
	Followers      int64        `json:"followers"`
	EngagementRate float64      `json:"engagement_rate"`
	TotalPosts     int          `json:"total_posts"`
	AvgLikes       float64      `json:"avg_likes"`
	AvgComments    float64      `json:"avg_comments"`
	AvgViews       float64      `json:"avg_views"`
	GrowthRate     float64      `json:"growth_rate"`
	QualityScore   float64      `json:"quality_score"`
	TopContent     []TopContent `json:"top_content"`
	Trend          string       `json:"trend"` // up, down, stable
}

// CampaignDetail is a campaign row inside analytics responses.
type CampaignDetail struct {
	ID                    string  `json:"id"`
	Title                 string  `json:"title"`
	BrandName             string  `json:"brand_name"`
	BrandLogo             string  `json:"brand_logo,omitempty"`
	Platform              string  `json:"platform"`
	Status                string  `json:"status"`
	Budget                float64 `json:"budget"`
	Earnings              float64 `json:"earnings"`
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	DeliverablesCompleted int     `json:"deliverables_completed"`
	DeliverablesTotal     int     `json:"deliverables_total"`
	PerformanceScore      float64 `json:"performance_score,omitempty"`
}

// CampaignAnalytics aggregates a creator's campaign history.
type CampaignAnalytics struct {
	TotalCampaigns     int              `json:"total_campaigns"`
	ActiveCampaigns    int              `json:"active_campaigns"`
	CompletedCampaigns int              `json:"completed_campaigns"`
	UpcomingCampaigns  int              `json:"upcoming_campaigns"`
	TotalEarnings      float64          `json:"total_earnings"`
	AvgCampaignValue   float64          `json:"avg_campaign_value"`
	SuccessRate        float64          `json:"success_rate"`
	Campaigns          []CampaignDetail `json:"campaigns"`
}

// EarningsMonth is one month's earnings bucket.
type EarningsMonth struct {
	Month          string  `json:"month"`
	Year           int     `json:"year"`
	Earnings       float64 `json:"earnings"`
	CampaignsCount int     `json:"campaigns_count"`
}

// EarningsAnalytics summarizes a creator's income.
type EarningsAnalytics struct {
	TotalEarnings      float64            `json:"total_earnings"`
	PendingEarnings    float64            `json:"pending_earnings"`
	ThisMonth          float64            `json:"this_month"`
	LastMonth          float64            `json:"last_month"`
	GrowthRate         float64            `json:"growth_rate"`
	EarningsByPlatform map[string]float64 `json:"earnings_by_platform"`
	EarningsByMonth    []EarningsMonth    `json:"earnings_by_month"`
	TopCampaigns       []struct {
		ID        string  `json:"id"`
		Title     string  `json:"title"`
		BrandName string  `json:"brand_name"`
		Earnings  float64 `json:"earnings"`
	} `json:"top_campaigns"`
}

// EngagementTrend is one point of the engagement time series.
type EngagementTrend struct {
	Date           string  `json:"date"`
	EngagementRate float64 `json:"engagement_rate"`
	Followers      int64   `json:"followers"`
	Likes          int64   `json:"likes"`
	Comments       int64   `json:"comments"`
	Views          int64   `json:"views"`
}

// FollowerGrowth is one point of the per-platform follower time series.
type FollowerGrowth struct {
	Date      string `json:"date"`
	Instagram int64  `json:"instagram,omitempty"`
	YouTube   int64  `json:"youtube,omitempty"`
	TikTok    int64  `json:"tiktok,omitempty"`
	Twitter   int64  `json:"twitter,omitempty"`
	Total     int64  `json:"total"`
}

// Insight is one AI-generated observation in the overview.
type Insight struct {
	Type    string `json:"type"` // success, warning, info
	Message string `json:"message"`
}

// OverallAnalytics is the single-call analytics overview.
type OverallAnalytics struct {
	TotalFollowers     int64   `json:"total_followers"`
	TotalReach         int64   `json:"total_reach"`
	AvgEngagementRate  float64 `json:"avg_engagement_rate"`
	PlatformsConnected int     `json:"platforms_connected"`
	TotalCampaigns     int     `json:"total_campaigns"`
	ActiveCampaigns    int     `json:"active_campaigns"`
	CompletedCampaigns int     `json:"completed_campaigns"`
	TotalEarnings      float64 `json:"total_earnings"`
	PendingEarnings    float64 `json:"pending_earnings"`

	Platforms []PlatformAnalytics `json:"platforms"`

	PastCampaigns       []CampaignDetail `json:"past_campaigns"`
	ActiveCampaignsList []CampaignDetail `json:"active_campaigns_list"`
	UpcomingCampaigns   []CampaignDetail `json:"upcoming_campaigns"`

	MonthlyEarnings []struct {
		Month  string  `json:"month"`
		Amount float64 `json:"amount"`
	} `json:"monthly_earnings"`
	EngagementTrend []struct {
		Date string  `json:"date"`
		Rate float64 `json:"rate"`
	} `json:"engagement_trend"`
	FollowersTrend []struct {
		Date  string `json:"date"`
		Count int64  `json:"count"`
	} `json:"followers_trend"`

	TopContent []struct {
		Platform     string `json:"platform"`
		Title        string `json:"title"`
		Views        int64  `json:"views"`
		Likes        int64  `json:"likes"`
		Comments     int64  `json:"comments"`
		ThumbnailURL string `json:"thumbnail_url,omitempty"`
		URL          string `json:"url,omitempty"`
	} `json:"top_content"`

	Insights []Insight `json:"insights"`
}

// AnalyticsComparison contrasts the current period with the previous one.
type AnalyticsComparison struct {
	Current  OverallAnalytics `json:"current"`
	Previous OverallAnalytics `json:"previous"`
	Changes  struct {
		FollowersChange  float64 `json:"followers_change"`
		EngagementChange float64 `json:"engagement_change"`
		EarningsChange   float64 `json:"earnings_change"`
		ReachChange      float64 `json:"reach_change"`
	} `json:"changes"`
}
