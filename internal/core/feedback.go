package core

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FeedbackRequest is the user feedback form payload.
type FeedbackRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
	Message  string `json:"message"`
}

// FeedbackService relays feedback submissions to the third-party form-relay
// endpoint. A 200 response means success; anything else is surfaced to the
// caller as a failure.
type FeedbackService struct {
	endpoint string
	client   *http.Client
	log      *zap.SugaredLogger
}

func NewFeedbackService(endpoint string, log *zap.SugaredLogger) *FeedbackService {
	return &FeedbackService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		log:      log,
	}
}

func (s *FeedbackService) Submit(ctx context.Context, req FeedbackRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.Message) == "" {
		return &ValidationError{Field: "message", Reason: "must not be empty"}
	}
	if req.Rating < 1 || req.Rating > 5 {
		return &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	stars := strings.Repeat("★", req.Rating)
	form := url.Values{
		"subject":  {fmt.Sprintf("%s : %s", req.Category, stars)},
		"name":     {req.Name},
		"email":    {req.Email},
		"category": {req.Category},
		"rating":   {fmt.Sprintf("%d/5 (%s)", req.Rating, stars)},
		"message":  {req.Message},
		"_replyto": {req.Email},
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build feedback request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to submit feedback: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feedback relay returned status %d", resp.StatusCode)
	}

	s.log.Infow("feedback submitted", "category", req.Category, "rating", req.Rating)
	return nil
}
