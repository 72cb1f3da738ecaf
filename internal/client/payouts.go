package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

const payoutsKey = "payouts"

// PayoutsService implements gocardless.PayoutsService. Payouts are created
// by GoCardless, so the surface is read-only.
type PayoutsService struct {
	httpClient *http.Client
}

// NewPayoutsService creates a new payouts service.
func NewPayoutsService(httpClient *http.Client) *PayoutsService {
	return &PayoutsService{
		httpClient: httpClient,
	}
}

// Get implements gocardless.PayoutsService.Get.
func (s *PayoutsService) Get(ctx context.Context, id string) (*gocardless.Payout, error) {
	err := validateID(id, "payout")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/payouts/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting payout: %w", err)
	}

	return decodeResource[gocardless.Payout](resp.Body, payoutsKey)
}

// List implements gocardless.PayoutsService.List.
func (s *PayoutsService) List(ctx context.Context, params *gocardless.ListParams) (*gocardless.PayoutListResult, error) {
	query := cloneListParams(params).ToValues()

	resp, err := s.httpClient.Get(ctx, "/payouts", query)
	if err != nil {
		return nil, fmt.Errorf("listing payouts: %w", err)
	}

	var result gocardless.PayoutListResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing payouts list: %w", err)
	}

	return &result, nil
}

// All implements gocardless.PayoutsService.All.
func (s *PayoutsService) All(ctx context.Context, params *gocardless.ListParams) *gocardless.Iterator[gocardless.Payout] {
	fetch := pageFetcher[gocardless.Payout](s.httpClient, "/payouts", payoutsKey, params)

	return gocardless.NewIterator(ctx, fetch, paginationOptions(params))
}

// Pages implements gocardless.PayoutsService.Pages.
func (s *PayoutsService) Pages(ctx context.Context, params *gocardless.ListParams) <-chan gocardless.PageResult[gocardless.Payout] {
	fetch := pageFetcher[gocardless.Payout](s.httpClient, "/payouts", payoutsKey, params)

	return gocardless.StreamPages(ctx, fetch, paginationOptions(params))
}
