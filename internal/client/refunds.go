package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

const refundsKey = "refunds"

// RefundsService implements gocardless.RefundsService.
type RefundsService struct {
	httpClient *http.Client
}

// NewRefundsService creates a new refunds service.
func NewRefundsService(httpClient *http.Client) *RefundsService {
	return &RefundsService{
		httpClient: httpClient,
	}
}

// Create implements gocardless.RefundsService.Create.
func (s *RefundsService) Create(ctx context.Context, req *gocardless.RefundCreateRequest) (*gocardless.Refund, error) {
	resp, err := s.httpClient.Post(ctx, "/refunds", requestEnvelope(refundsKey, req))
	if err != nil {
		return nil, fmt.Errorf("creating refund: %w", err)
	}

	return decodeResource[gocardless.Refund](resp.Body, refundsKey)
}

// Get implements gocardless.RefundsService.Get.
func (s *RefundsService) Get(ctx context.Context, id string) (*gocardless.Refund, error) {
	err := validateID(id, "refund")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/refunds/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting refund: %w", err)
	}

	return decodeResource[gocardless.Refund](resp.Body, refundsKey)
}

// Update implements gocardless.RefundsService.Update.
func (s *RefundsService) Update(ctx context.Context, id string, req *gocardless.RefundUpdateRequest) (*gocardless.Refund, error) {
	err := validateID(id, "refund")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Put(ctx, "/refunds/"+id, requestEnvelope(refundsKey, req))
	if err != nil {
		return nil, fmt.Errorf("updating refund: %w", err)
	}

	return decodeResource[gocardless.Refund](resp.Body, refundsKey)
}

// List implements gocardless.RefundsService.List.
func (s *RefundsService) List(ctx context.Context, params *gocardless.ListParams) (*gocardless.RefundListResult, error) {
	query := cloneListParams(params).ToValues()

	resp, err := s.httpClient.Get(ctx, "/refunds", query)
	if err != nil {
		return nil, fmt.Errorf("listing refunds: %w", err)
	}

	var result gocardless.RefundListResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing refunds list: %w", err)
	}

	return &result, nil
}

// All implements gocardless.RefundsService.All.
func (s *RefundsService) All(ctx context.Context, params *gocardless.ListParams) *gocardless.Iterator[gocardless.Refund] {
	fetch := pageFetcher[gocardless.Refund](s.httpClient, "/refunds", refundsKey, params)

	return gocardless.NewIterator(ctx, fetch, paginationOptions(params))
}

// Pages implements gocardless.RefundsService.Pages.
func (s *RefundsService) Pages(ctx context.Context, params *gocardless.ListParams) <-chan gocardless.PageResult[gocardless.Refund] {
	fetch := pageFetcher[gocardless.Refund](s.httpClient, "/refunds", refundsKey, params)

	return gocardless.StreamPages(ctx, fetch, paginationOptions(params))
}
