package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

const paymentsKey = "payments"

// PaymentsService implements gocardless.PaymentsService.
type PaymentsService struct {
	httpClient *http.Client
}

// NewPaymentsService creates a new payments service.
func NewPaymentsService(httpClient *http.Client) *PaymentsService {
	return &PaymentsService{
		httpClient: httpClient,
	}
}

// Create implements gocardless.PaymentsService.Create.
func (s *PaymentsService) Create(ctx context.Context, req *gocardless.PaymentCreateRequest) (*gocardless.Payment, error) {
	resp, err := s.httpClient.Post(ctx, "/payments", requestEnvelope(paymentsKey, req))
	if err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	return decodeResource[gocardless.Payment](resp.Body, paymentsKey)
}

// Get implements gocardless.PaymentsService.Get.
func (s *PaymentsService) Get(ctx context.Context, id string) (*gocardless.Payment, error) {
	err := validateID(id, "payment")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/payments/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return decodeResource[gocardless.Payment](resp.Body, paymentsKey)
}

// Update implements gocardless.PaymentsService.Update.
func (s *PaymentsService) Update(ctx context.Context, id string, req *gocardless.PaymentUpdateRequest) (*gocardless.Payment, error) {
	err := validateID(id, "payment")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Put(ctx, "/payments/"+id, requestEnvelope(paymentsKey, req))
	if err != nil {
		return nil, fmt.Errorf("updating payment: %w", err)
	}

	return decodeResource[gocardless.Payment](resp.Body, paymentsKey)
}

// Cancel implements gocardless.PaymentsService.Cancel. Only payments still
// pending submission can be cancelled; anything later returns an
// invalid_state error.
func (s *PaymentsService) Cancel(ctx context.Context, id string, metadata gocardless.Metadata) (*gocardless.Payment, error) {
	err := validateID(id, "payment")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Post(ctx, "/payments/"+id+"/actions/cancel", actionEnvelope(metadata))
	if err != nil {
		return nil, fmt.Errorf("cancelling payment: %w", err)
	}

	return decodeResource[gocardless.Payment](resp.Body, paymentsKey)
}

// Retry implements gocardless.PaymentsService.Retry. Failed payments can be
// retried up to three times.
func (s *PaymentsService) Retry(ctx context.Context, id string, metadata gocardless.Metadata) (*gocardless.Payment, error) {
	err := validateID(id, "payment")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Post(ctx, "/payments/"+id+"/actions/retry", actionEnvelope(metadata))
	if err != nil {
		return nil, fmt.Errorf("retrying payment: %w", err)
	}

	return decodeResource[gocardless.Payment](resp.Body, paymentsKey)
}

// List implements gocardless.PaymentsService.List.
func (s *PaymentsService) List(ctx context.Context, params *gocardless.ListParams) (*gocardless.PaymentListResult, error) {
	query := cloneListParams(params).ToValues()

	resp, err := s.httpClient.Get(ctx, "/payments", query)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	var result gocardless.PaymentListResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing payments list: %w", err)
	}

	return &result, nil
}

// All implements gocardless.PaymentsService.All.
func (s *PaymentsService) All(ctx context.Context, params *gocardless.ListParams) *gocardless.Iterator[gocardless.Payment] {
	fetch := pageFetcher[gocardless.Payment](s.httpClient, "/payments", paymentsKey, params)

	return gocardless.NewIterator(ctx, fetch, paginationOptions(params))
}

// Pages implements gocardless.PaymentsService.Pages.
func (s *PaymentsService) Pages(ctx context.Context, params *gocardless.ListParams) <-chan gocardless.PageResult[gocardless.Payment] {
	fetch := pageFetcher[gocardless.Payment](s.httpClient, "/payments", paymentsKey, params)

	return gocardless.StreamPages(ctx, fetch, paginationOptions(params))
}
