package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

const customersKey = "customers"

// CustomersService implements gocardless.CustomersService.
type CustomersService struct {
	httpClient *http.Client
}

// NewCustomersService creates a new customers service.
func NewCustomersService(httpClient *http.Client) *CustomersService {
	return &CustomersService{
		httpClient: httpClient,
	}
}

// Create implements gocardless.CustomersService.Create.
func (s *CustomersService) Create(ctx context.Context, req *gocardless.CustomerCreateRequest) (*gocardless.Customer, error) {
	resp, err := s.httpClient.Post(ctx, "/customers", requestEnvelope(customersKey, req))
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return decodeResource[gocardless.Customer](resp.Body, customersKey)
}

// Get implements gocardless.CustomersService.Get.
func (s *CustomersService) Get(ctx context.Context, id string) (*gocardless.Customer, error) {
	err := validateID(id, "customer")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/customers/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return decodeResource[gocardless.Customer](resp.Body, customersKey)
}

// Update implements gocardless.CustomersService.Update.
func (s *CustomersService) Update(ctx context.Context, id string, req *gocardless.CustomerUpdateRequest) (*gocardless.Customer, error) {
	err := validateID(id, "customer")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Put(ctx, "/customers/"+id, requestEnvelope(customersKey, req))
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	return decodeResource[gocardless.Customer](resp.Body, customersKey)
}

// Remove implements gocardless.CustomersService.Remove. Removal only
// succeeds for customers with no active mandates.
func (s *CustomersService) Remove(ctx context.Context, id string) error {
	err := validateID(id, "customer")
	if err != nil {
		return err
	}

	_, err = s.httpClient.Delete(ctx, "/customers/"+id)
	if err != nil {
		return fmt.Errorf("removing customer: %w", err)
	}

	return nil
}

// List implements gocardless.CustomersService.List.
func (s *CustomersService) List(ctx context.Context, params *gocardless.ListParams) (*gocardless.CustomerListResult, error) {
	query := cloneListParams(params).ToValues()

	resp, err := s.httpClient.Get(ctx, "/customers", query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	var result gocardless.CustomerListResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing customers list: %w", err)
	}

	return &result, nil
}

// All implements gocardless.CustomersService.All.
func (s *CustomersService) All(ctx context.Context, params *gocardless.ListParams) *gocardless.Iterator[gocardless.Customer] {
	fetch := pageFetcher[gocardless.Customer](s.httpClient, "/customers", customersKey, params)

	return gocardless.NewIterator(ctx, fetch, paginationOptions(params))
}

// Pages implements gocardless.CustomersService.Pages.
func (s *CustomersService) Pages(ctx context.Context, params *gocardless.ListParams) <-chan gocardless.PageResult[gocardless.Customer] {
	fetch := pageFetcher[gocardless.Customer](s.httpClient, "/customers", customersKey, params)

	return gocardless.StreamPages(ctx, fetch, paginationOptions(params))
}
