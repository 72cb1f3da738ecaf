package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

const subscriptionsKey = "subscriptions"

// SubscriptionsService implements gocardless.SubscriptionsService.
type SubscriptionsService struct {
	httpClient *http.Client
}

// NewSubscriptionsService creates a new subscriptions service.
func NewSubscriptionsService(httpClient *http.Client) *SubscriptionsService {
	return &SubscriptionsService{
		httpClient: httpClient,
	}
}

// Create implements gocardless.SubscriptionsService.Create.
func (s *SubscriptionsService) Create(ctx context.Context, req *gocardless.SubscriptionCreateRequest) (*gocardless.Subscription, error) {
	resp, err := s.httpClient.Post(ctx, "/subscriptions", requestEnvelope(subscriptionsKey, req))
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	return decodeResource[gocardless.Subscription](resp.Body, subscriptionsKey)
}

// Get implements gocardless.SubscriptionsService.Get.
func (s *SubscriptionsService) Get(ctx context.Context, id string) (*gocardless.Subscription, error) {
	err := validateID(id, "subscription")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/subscriptions/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	return decodeResource[gocardless.Subscription](resp.Body, subscriptionsKey)
}

// Update implements gocardless.SubscriptionsService.Update.
func (s *SubscriptionsService) Update(ctx context.Context, id string, req *gocardless.SubscriptionUpdateRequest) (*gocardless.Subscription, error) {
	err := validateID(id, "subscription")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Put(ctx, "/subscriptions/"+id, requestEnvelope(subscriptionsKey, req))
	if err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	return decodeResource[gocardless.Subscription](resp.Body, subscriptionsKey)
}

// Cancel implements gocardless.SubscriptionsService.Cancel. Payments not
// yet submitted to the banks are cancelled with the subscription.
func (s *SubscriptionsService) Cancel(ctx context.Context, id string, metadata gocardless.Metadata) (*gocardless.Subscription, error) {
	err := validateID(id, "subscription")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Post(ctx, "/subscriptions/"+id+"/actions/cancel", actionEnvelope(metadata))
	if err != nil {
		return nil, fmt.Errorf("cancelling subscription: %w", err)
	}

	return decodeResource[gocardless.Subscription](resp.Body, subscriptionsKey)
}

// Pause implements gocardless.SubscriptionsService.Pause. A paused
// subscription creates no payments until resumed; PauseCycles limits the
// pause to a number of billing cycles.
func (s *SubscriptionsService) Pause(ctx context.Context, id string, req *gocardless.SubscriptionPauseRequest) (*gocardless.Subscription, error) {
	err := validateID(id, "subscription")
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{"data": req}
	if req == nil {
		body = actionEnvelope(nil)
	}

	resp, err := s.httpClient.Post(ctx, "/subscriptions/"+id+"/actions/pause", body)
	if err != nil {
		return nil, fmt.Errorf("pausing subscription: %w", err)
	}

	return decodeResource[gocardless.Subscription](resp.Body, subscriptionsKey)
}

// Resume implements gocardless.SubscriptionsService.Resume.
func (s *SubscriptionsService) Resume(ctx context.Context, id string, metadata gocardless.Metadata) (*gocardless.Subscription, error) {
	err := validateID(id, "subscription")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Post(ctx, "/subscriptions/"+id+"/actions/resume", actionEnvelope(metadata))
	if err != nil {
		return nil, fmt.Errorf("resuming subscription: %w", err)
	}

	return decodeResource[gocardless.Subscription](resp.Body, subscriptionsKey)
}

// List implements gocardless.SubscriptionsService.List.
func (s *SubscriptionsService) List(ctx context.Context, params *gocardless.ListParams) (*gocardless.SubscriptionListResult, error) {
	query := cloneListParams(params).ToValues()

	resp, err := s.httpClient.Get(ctx, "/subscriptions", query)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	var result gocardless.SubscriptionListResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing subscriptions list: %w", err)
	}

	return &result, nil
}

// All implements gocardless.SubscriptionsService.All.
func (s *SubscriptionsService) All(ctx context.Context, params *gocardless.ListParams) *gocardless.Iterator[gocardless.Subscription] {
	fetch := pageFetcher[gocardless.Subscription](s.httpClient, "/subscriptions", subscriptionsKey, params)

	return gocardless.NewIterator(ctx, fetch, paginationOptions(params))
}

// Pages implements gocardless.SubscriptionsService.Pages.
func (s *SubscriptionsService) Pages(ctx context.Context, params *gocardless.ListParams) <-chan gocardless.PageResult[gocardless.Subscription] {
	fetch := pageFetcher[gocardless.Subscription](s.httpClient, "/subscriptions", subscriptionsKey, params)

	return gocardless.StreamPages(ctx, fetch, paginationOptions(params))
}
