package influmatch

import (
	"context"
	"fmt"

	"github.com/influmatch/influmatch-go/pkg/apiclient"
)

// BrandsService manages brand company profiles.
type BrandsService struct {
	api *apiclient.Client
}

// BrandInput carries the writable brand-profile fields.
type BrandInput struct {
	CompanyName string `json:"company_name,omitempty"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Create registers a brand profile for the current account.
func (s *BrandsService) Create(ctx context.Context, input BrandInput) (*Brand, error) {
	brand, err := postJSON[Brand](ctx, s.api, "/brands", input)
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// List returns every brand visible to the caller.
func (s *BrandsService) List(ctx context.Context) ([]Brand, error) {
	return getJSON[[]Brand](ctx, s.api, "/brands", nil)
}

// Get returns one brand by ID.
func (s *BrandsService) Get(ctx context.Context, id string) (*Brand, error) {
	brand, err := getJSON[Brand](ctx, s.api, fmt.Sprintf("/brands/%s", id), nil)
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// Me returns the current account's brand profile.
func (s *BrandsService) Me(ctx context.Context) (*Brand, error) {
	brand, err := getJSON[Brand](ctx, s.api, "/brands/me", nil)
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// Update patches brand-profile fields.
func (s *BrandsService) Update(ctx context.Context, id string, input BrandInput) (*Brand, error) {
	brand, err := patchJSON[Brand](ctx, s.api, fmt.Sprintf("/brands/%s", id), input)
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// Delete removes a brand profile.
func (s *BrandsService) Delete(ctx context.Context, id string) error {
	_, err := s.api.Delete(ctx, fmt.Sprintf("/brands/%s", id))
	return err
}
