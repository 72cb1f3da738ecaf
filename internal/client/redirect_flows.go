package client

import (
	"context"
	"fmt"

	"github.com/gocardless/gocardless-go/internal/http"
	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

const redirectFlowsKey = "redirect_flows"

// RedirectFlowsService implements gocardless.RedirectFlowsService.
type RedirectFlowsService struct {
	httpClient *http.Client
}

// NewRedirectFlowsService creates a new redirect flows service.
func NewRedirectFlowsService(httpClient *http.Client) *RedirectFlowsService {
	return &RedirectFlowsService{
		httpClient: httpClient,
	}
}

// Create implements gocardless.RedirectFlowsService.Create.
func (s *RedirectFlowsService) Create(ctx context.Context, req *gocardless.RedirectFlowCreateRequest) (*gocardless.RedirectFlow, error) {
	if req == nil || req.SessionToken == "" {
		return nil, gocardless.ErrSessionTokenRequired
	}

	resp, err := s.httpClient.Post(ctx, "/redirect_flows", requestEnvelope(redirectFlowsKey, req))
	if err != nil {
		return nil, fmt.Errorf("creating redirect flow: %w", err)
	}

	return decodeResource[gocardless.RedirectFlow](resp.Body, redirectFlowsKey)
}

// Get implements gocardless.RedirectFlowsService.Get.
func (s *RedirectFlowsService) Get(ctx context.Context, id string) (*gocardless.RedirectFlow, error) {
	err := validateID(id, "redirect flow")
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Get(ctx, "/redirect_flows/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting redirect flow: %w", err)
	}

	return decodeResource[gocardless.RedirectFlow](resp.Body, redirectFlowsKey)
}

// Complete implements gocardless.RedirectFlowsService.Complete. The session
// token must match the one the flow was created with; completing creates
// the customer, bank account, and mandate the flow collected.
func (s *RedirectFlowsService) Complete(ctx context.Context, id, sessionToken string) (*gocardless.RedirectFlow, error) {
	err := validateID(id, "redirect flow")
	if err != nil {
		return nil, err
	}

	if sessionToken == "" {
		return nil, gocardless.ErrSessionTokenRequired
	}

	body := map[string]interface{}{
		"data": map[string]string{"session_token": sessionToken},
	}

	resp, err := s.httpClient.Post(ctx, "/redirect_flows/"+id+"/actions/complete", body)
	if err != nil {
		return nil, fmt.Errorf("completing redirect flow: %w", err)
	}

	return decodeResource[gocardless.RedirectFlow](resp.Body, redirectFlowsKey)
}
