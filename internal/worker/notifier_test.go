package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopstack/storefront/internal/domain"
)

type emailCapture struct {
	mu     sync.Mutex
	emails []map[string]string
	status int
}

func (e *emailCapture) handler(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	e.mu.Lock()
	e.emails = append(e.emails, req)
	e.mu.Unlock()

	status := e.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"status":"sent"}`)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifier_Handle(t *testing.T) {
	t.Run("sends a confirmation email", func(t *testing.T) {
		capture := &emailCapture{}
		server := httptest.NewServer(http.HandlerFunc(capture.handler))
		defer server.Close()

		notifier := NewNotifier(server.URL, server.Client(), testLogger())

		event := domain.OrderPlacedEvent{
			OrderID: "order-1",
			UserID:  "user-7",
			Items: []domain.OrderItem{
				{ProductID: "p1", ProductName: "Widget", Quantity: 2, Price: 100},
				{ProductID: "p2", ProductName: "Gadget", Quantity: 1, Price: 300},
			},
			Total:     500,
			Timestamp: time.Now().UTC(),
		}
		payload, _ := json.Marshal(event)

		if err := notifier.Handle(context.Background(), payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(capture.emails) != 1 {
			t.Fatalf("expected one email, got %d", len(capture.emails))
		}
		email := capture.emails[0]
		if email["to"] != "user-7@example.com" {
			t.Errorf("unexpected recipient: %s", email["to"])
		}
		if email["subject"] != "Order Confirmation: order-1" {
			t.Errorf("unexpected subject: %s", email["subject"])
		}
		if !strings.Contains(email["body"], "3 item(s)") {
			t.Errorf("expected body to count 3 units, got: %s", email["body"])
		}
	})

	t.Run("drops malformed payloads", func(t *testing.T) {
		capture := &emailCapture{}
		server := httptest.NewServer(http.HandlerFunc(capture.handler))
		defer server.Close()

		notifier := NewNotifier(server.URL, server.Client(), testLogger())

		if err := notifier.Handle(context.Background(), []byte("{broken")); err != nil {
			t.Fatalf("expected malformed payload to be dropped, got %v", err)
		}
		if len(capture.emails) != 0 {
			t.Errorf("expected no email, got %d", len(capture.emails))
		}
	})

	t.Run("propagates email service failures", func(t *testing.T) {
		capture := &emailCapture{status: http.StatusInternalServerError}
		server := httptest.NewServer(http.HandlerFunc(capture.handler))
		defer server.Close()

		notifier := NewNotifier(server.URL, server.Client(), testLogger())

		payload, _ := json.Marshal(domain.OrderPlacedEvent{OrderID: "order-1", UserID: "u1"})
		if err := notifier.Handle(context.Background(), payload); err == nil {
			t.Error("expected error when email service fails")
		}
	})
}
