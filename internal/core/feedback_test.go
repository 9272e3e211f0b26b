package core

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestFeedbackSubmit(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		got = map[string]string{
			"subject":  r.PostFormValue("subject"),
			"rating":   r.PostFormValue("rating"),
			"_replyto": r.PostFormValue("_replyto"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewFeedbackService(server.URL, zap.NewNop().Sugar())
	err := svc.Submit(context.Background(), FeedbackRequest{
		Name:     "Jane Doe",
		Email:    "jane@gmail.com",
		Category: "Bug Report",
		Rating:   4,
		Message:  "The report arrived twice.",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if got["subject"] != "Bug Report : ★★★★" {
		t.Errorf("subject = %q", got["subject"])
	}
	if got["rating"] != "4/5 (★★★★)" {
		t.Errorf("rating = %q", got["rating"])
	}
	if got["_replyto"] != "jane@gmail.com" {
		t.Errorf("_replyto = %q", got["_replyto"])
	}
}

func TestFeedbackSubmitRelayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewFeedbackService(server.URL, zap.NewNop().Sugar())
	err := svc.Submit(context.Background(), FeedbackRequest{
		Name:    "Jane Doe",
		Email:   "jane@gmail.com",
		Rating:  3,
		Message: "hello",
	})
	if err == nil {
		t.Fatal("expected error on relay failure")
	}
}

func TestFeedbackSubmitValidation(t *testing.T) {
	svc := NewFeedbackService("http://127.0.0.1:0", zap.NewNop().Sugar())

	tests := []struct {
		name  string
		req   FeedbackRequest
		field string
	}{
		{"missing name", FeedbackRequest{Email: "a@b.com", Rating: 3, Message: "x"}, "name"},
		{"missing email", FeedbackRequest{Name: "A", Rating: 3, Message: "x"}, "email"},
		{"missing message", FeedbackRequest{Name: "A", Email: "a@b.com", Rating: 3}, "message"},
		{"rating too low", FeedbackRequest{Name: "A", Email: "a@b.com", Rating: 0, Message: "x"}, "rating"},
		{"rating too high", FeedbackRequest{Name: "A", Email: "a@b.com", Rating: 6, Message: "x"}, "rating"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Submit(context.Background(), tc.req)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if valErr.Field != tc.field {
				t.Errorf("field = %q, want %q", valErr.Field, tc.field)
			}
		})
	}
}
