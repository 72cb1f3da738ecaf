package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

const eventsKey = "events"

// EventsService implements gocardless.EventsService. The event feed is the
// audit trail of everything that happens to the other resources.
type EventsService struct {
	httpClient *http.Client
}

// NewEventsService creates a new events service.
func NewEventsService(httpClient *http.Client) *EventsService {
	return &EventsService{
		httpClient: httpClient,
	}
}

// Get implements gocardless.EventsService.Get.
func (s *EventsService) Get(ctx context.Context, id string) (*gocardless.Event, error) {
	err := validateID(id, "event")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/events/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting event: %w", err)
	}

	return decodeResource[gocardless.Event](resp.Body, eventsKey)
}

// List implements gocardless.EventsService.List.
func (s *EventsService) List(ctx context.Context, params *gocardless.ListParams) (*gocardless.EventListResult, error) {
	query := cloneListParams(params).ToValues()

	resp, err := s.httpClient.Get(ctx, "/events", query)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	var result gocardless.EventListResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing events list: %w", err)
	}

	return &result, nil
}

// All implements gocardless.EventsService.All.
func (s *EventsService) All(ctx context.Context, params *gocardless.ListParams) *gocardless.Iterator[gocardless.Event] {
	fetch := pageFetcher[gocardless.Event](s.httpClient, "/events", eventsKey, params)

	return gocardless.NewIterator(ctx, fetch, paginationOptions(params))
}

// Pages implements gocardless.EventsService.Pages.
func (s *EventsService) Pages(ctx context.Context, params *gocardless.ListParams) <-chan gocardless.PageResult[gocardless.Event] {
	fetch := pageFetcher[gocardless.Event](s.httpClient, "/events", eventsKey, params)

	return gocardless.StreamPages(ctx, fetch, paginationOptions(params))
}
