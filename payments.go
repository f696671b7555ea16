package influmatch

import (
	"context"
	"fmt"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
)

// PaymentsService tracks money movements for campaigns and creators.
type PaymentsService struct {
	api *apiclient.Client
}

// PaymentInput creates a payment record.
type PaymentInput struct {
	CampaignID     string  `json:"campaign_id"`
	CreatorID      string  `json:"creator_id"`
	Amount         float64 `json:"amount"`
	PaymentType    string  `json:"payment_type"`
	PaymentGateway string  `json:"payment_gateway,omitempty"`
}

// Earnings is the per-creator earnings summary; the backend evolves this
// payload freely.
type Earnings map[string]any

// Create records a new payment.
func (s *PaymentsService) Create(ctx context.Context, input PaymentInput) (*Payment, error) {
	payment, err := postJSON[Payment](ctx, s.api, "/payments", input)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// List returns every payment visible to the caller.
func (s *PaymentsService) List(ctx context.Context) ([]Payment, error) {
	return getJSON[[]Payment](ctx, s.api, "/payments", nil)
}

// ListByCreator returns a creator's payments.
func (s *PaymentsService) ListByCreator(ctx context.Context, creatorID string) ([]Payment, error) {
	return getJSON[[]Payment](ctx, s.api, fmt.Sprintf("/payments/creator/%s", creatorID), nil)
}

// CreatorEarnings returns a creator's earnings summary.
func (s *PaymentsService) CreatorEarnings(ctx context.Context, creatorID string) (Earnings, error) {
	return getJSON[Earnings](ctx, s.api, fmt.Sprintf("/payments/creator/%s/earnings", creatorID), nil)
}

// ListByCampaign returns a campaign's payments.
func (s *PaymentsService) ListByCampaign(ctx context.Context, campaignID string) ([]Payment, error) {
	return getJSON[[]Payment](ctx, s.api, fmt.Sprintf("/payments/campaign/%s", campaignID), nil)
}

// Get returns one payment by ID.
func (s *PaymentsService) Get(ctx context.Context, id string) (*Payment, error) {
	payment, err := getJSON[Payment](ctx, s.api, fmt.Sprintf("/payments/%s", id), nil)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// UpdateStatus moves a payment through its lifecycle.
func (s *PaymentsService) UpdateStatus(ctx context.Context, id, status string) (*Payment, error) {
	payment, err := patchJSON[Payment](ctx, s.api, fmt.Sprintf("/payments/%s/status", id), map[string]any{
		"status": status,
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
