package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

const creditorsKey = "creditors"

// CreditorsService implements gocardless.CreditorsService.
type CreditorsService struct {
	httpClient *http.Client
}

// NewCreditorsService creates a new creditors service.
func NewCreditorsService(httpClient *http.Client) *CreditorsService {
	return &CreditorsService{
		httpClient: httpClient,
	}
}

// Create implements gocardless.CreditorsService.Create.
func (s *CreditorsService) Create(ctx context.Context, req *gocardless.CreditorCreateRequest) (*gocardless.Creditor, error) {
	resp, err := s.httpClient.Post(ctx, "/creditors", requestEnvelope(creditorsKey, req))
	if err != nil {
		return nil, fmt.Errorf("creating creditor: %w", err)
	}

	return decodeResource[gocardless.Creditor](resp.Body, creditorsKey)
}

// Get implements gocardless.CreditorsService.Get.
func (s *CreditorsService) Get(ctx context.Context, id string) (*gocardless.Creditor, error) {
	err := validateID(id, "creditor")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/creditors/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting creditor: %w", err)
	}

	return decodeResource[gocardless.Creditor](resp.Body, creditorsKey)
}

// Update implements gocardless.CreditorsService.Update.
func (s *CreditorsService) Update(ctx context.Context, id string, req *gocardless.CreditorUpdateRequest) (*gocardless.Creditor, error) {
	err := validateID(id, "creditor")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Put(ctx, "/creditors/"+id, requestEnvelope(creditorsKey, req))
	if err != nil {
		return nil, fmt.Errorf("updating creditor: %w", err)
	}

	return decodeResource[gocardless.Creditor](resp.Body, creditorsKey)
}

// List implements gocardless.CreditorsService.List.
func (s *CreditorsService) List(ctx context.Context, params *gocardless.ListParams) (*gocardless.CreditorListResult, error) {
	query := cloneListParams(params).ToValues()

	resp, err := s.httpClient.Get(ctx, "/creditors", query)
	if err != nil {
		return nil, fmt.Errorf("listing creditors: %w", err)
	}

	var result gocardless.CreditorListResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing creditors list: %w", err)
	}

	return &result, nil
}

// All implements gocardless.CreditorsService.All.
func (s *CreditorsService) All(ctx context.Context, params *gocardless.ListParams) *gocardless.Iterator[gocardless.Creditor] {
	fetch := pageFetcher[gocardless.Creditor](s.httpClient, "/creditors", creditorsKey, params)

	return gocardless.NewIterator(ctx, fetch, paginationOptions(params))
}

// Pages implements gocardless.CreditorsService.Pages.
func (s *CreditorsService) Pages(ctx context.Context, params *gocardless.ListParams) <-chan gocardless.PageResult[gocardless.Creditor] {
	fetch := pageFetcher[gocardless.Creditor](s.httpClient, "/creditors", creditorsKey, params)

	return gocardless.StreamPages(ctx, fetch, paginationOptions(params))
}
