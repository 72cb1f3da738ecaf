package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

const mandatesKey = "mandates"

// MandatesService implements gocardless.MandatesService.
type MandatesService struct {
	httpClient *http.Client
}

// NewMandatesService creates a new mandates service.
func NewMandatesService(httpClient *http.Client) *MandatesService {
	return &MandatesService{
		httpClient: httpClient,
	}
}

// Create implements gocardless.MandatesService.Create.
func (s *MandatesService) Create(ctx context.Context, req *gocardless.MandateCreateRequest) (*gocardless.Mandate, error) {
	resp, err := s.httpClient.Post(ctx, "/mandates", requestEnvelope(mandatesKey, req))
	if err != nil {
		return nil, fmt.Errorf("creating mandate: %w", err)
	}

	return decodeResource[gocardless.Mandate](resp.Body, mandatesKey)
}

// Get implements gocardless.MandatesService.Get.
func (s *MandatesService) Get(ctx context.Context, id string) (*gocardless.Mandate, error) {
	err := validateID(id, "mandate")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/mandates/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting mandate: %w", err)
	}

	return decodeResource[gocardless.Mandate](resp.Body, mandatesKey)
}

// Update implements gocardless.MandatesService.Update.
func (s *MandatesService) Update(ctx context.Context, id string, req *gocardless.MandateUpdateRequest) (*gocardless.Mandate, error) {
	err := validateID(id, "mandate")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Put(ctx, "/mandates/"+id, requestEnvelope(mandatesKey, req))
	if err != nil {
		return nil, fmt.Errorf("updating mandate: %w", err)
	}

	return decodeResource[gocardless.Mandate](resp.Body, mandatesKey)
}

// Cancel implements gocardless.MandatesService.Cancel. Cancelling a mandate
// also cancels any payments not yet submitted to the banks.
func (s *MandatesService) Cancel(ctx context.Context, id string, metadata gocardless.Metadata) (*gocardless.Mandate, error) {
	err := validateID(id, "mandate")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Post(ctx, "/mandates/"+id+"/actions/cancel", actionEnvelope(metadata))
	if err != nil {
		return nil, fmt.Errorf("cancelling mandate: %w", err)
	}

	return decodeResource[gocardless.Mandate](resp.Body, mandatesKey)
}

// Reinstate implements gocardless.MandatesService.Reinstate. Only failed or
// cancelled mandates can be reinstated, and not all schemes support it.
func (s *MandatesService) Reinstate(ctx context.Context, id string, metadata gocardless.Metadata) (*gocardless.Mandate, error) {
	err := validateID(id, "mandate")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Post(ctx, "/mandates/"+id+"/actions/reinstate", actionEnvelope(metadata))
	if err != nil {
		return nil, fmt.Errorf("reinstating mandate: %w", err)
	}

	return decodeResource[gocardless.Mandate](resp.Body, mandatesKey)
}

// List implements gocardless.MandatesService.List.
func (s *MandatesService) List(ctx context.Context, params *gocardless.ListParams) (*gocardless.MandateListResult, error) {
	query := cloneListParams(params).ToValues()

	resp, err := s.httpClient.Get(ctx, "/mandates", query)
	if err != nil {
		return nil, fmt.Errorf("listing mandates: %w", err)
	}

	var result gocardless.MandateListResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing mandates list: %w", err)
	}

	return &result, nil
}

// All implements gocardless.MandatesService.All.
func (s *MandatesService) All(ctx context.Context, params *gocardless.ListParams) *gocardless.Iterator[gocardless.Mandate] {
	fetch := pageFetcher[gocardless.Mandate](s.httpClient, "/mandates", mandatesKey, params)

	return gocardless.NewIterator(ctx, fetch, paginationOptions(params))
}

// Pages implements gocardless.MandatesService.Pages.
func (s *MandatesService) Pages(ctx context.Context, params *gocardless.ListParams) <-chan gocardless.PageResult[gocardless.Mandate] {
	fetch := pageFetcher[gocardless.Mandate](s.httpClient, "/mandates", mandatesKey, params)

	return gocardless.StreamPages(ctx, fetch, paginationOptions(params))
}
