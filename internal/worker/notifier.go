// Package worker turns order.placed events into confirmation emails.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopstack/storefront/internal/domain"
)

type Notifier struct {
	emailServiceURL string
	httpClient      *http.Client
	logger          *slog.Logger
}

func NewNotifier(emailServiceURL string, client *http.Client, logger *slog.Logger) *Notifier {
	return &Notifier{
		emailServiceURL: emailServiceURL,
		httpClient:      client,
		logger:          logger,
	}
}

// Handle processes one order.placed payload. Malformed payloads are
// dropped with a log line so a bad message cannot wedge the consumer;
// email delivery failures propagate so the message is redelivered.
func (n *Notifier) Handle(ctx context.Context, payload []byte) error {
	var event domain.OrderPlacedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		n.logger.Error("dropping malformed order placed event", "error", err)
		return nil
	}

	n.logger.Info("processing order placed event", "order_id", event.OrderID, "user_id", event.UserID)

	units := 0
	for _, item := range event.Items {
		units += item.Quantity
	}

	email := map[string]string{
		"to":      event.UserID + "@example.com",
		"subject": "Order Confirmation: " + event.OrderID,
		"body": fmt.Sprintf("Your order %s for %d item(s) totalling Rs.%d has been placed and is on process.",
			event.OrderID, units, event.Total),
	}

	if err := n.send(ctx, email); err != nil {
		return fmt.Errorf("send confirmation email for order %s: %w", event.OrderID, err)
	}

	n.logger.Info("confirmation email sent", "order_id", event.OrderID)
	return nil
}

func (n *Notifier) send(ctx context.Context, email map[string]string) error {
	data, err := json.Marshal(email)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.emailServiceURL+"/send", bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}

	return nil
}
