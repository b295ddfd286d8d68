package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bookshelf/bookshelf-api/internal/mailer"
	"github.com/bookshelf/bookshelf-api/pkg/events"
	"github.com/bookshelf/bookshelf-api/pkg/logger"
)

const (
	SubjectVerification  = "notify.email.verification"
	SubjectPasswordReset = "notify.email.reset"

	workerQueue = "notify-workers"
)

// EmailEvent is the payload carried on the bus for both mail kinds.
type EmailEvent struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Dispatcher hands mail work off without blocking the request. Failures are
// logged, never returned; mail must not fail the primary operation.
type Dispatcher interface {
	SendVerification(ctx context.Context, email, token string)
	SendPasswordReset(ctx context.Context, email, token string)
}

// BusDispatcher publishes mail events for a worker to pick up.
type BusDispatcher struct {
	bus events.Publisher
}

func NewBusDispatcher(bus events.Publisher) *BusDispatcher {
	return &BusDispatcher{bus: bus}
}

func (d *BusDispatcher) SendVerification(ctx context.Context, email, token string) {
	d.publish(ctx, SubjectVerification, email, token)
}

func (d *BusDispatcher) SendPasswordReset(ctx context.Context, email, token string) {
	d.publish(ctx, SubjectPasswordReset, email, token)
}

func (d *BusDispatcher) publish(ctx context.Context, subject, email, token string) {
	if err := d.bus.Publish(ctx, subject, EmailEvent{Email: email, Token: token}); err != nil {
		logger.ErrorContext(ctx, "Failed to publish mail event", "subject", subject, "error", err)
	}
}

// Worker consumes mail events and delivers them through the mailer.
type Worker struct {
	mailer  mailer.Service
	baseURL string
}

func NewWorker(m mailer.Service, baseURL string) *Worker {
	return &Worker{mailer: m, baseURL: baseURL}
}

// Start subscribes the worker to both mail subjects.
func (w *Worker) Start(bus events.Subscriber) error {
	if err := bus.QueueSubscribe(SubjectVerification, workerQueue, w.handleVerification); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", SubjectVerification, err)
	}
	if err := bus.QueueSubscribe(SubjectPasswordReset, workerQueue, w.handlePasswordReset); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", SubjectPasswordReset, err)
	}
	return nil
}

func (w *Worker) handleVerification(msg *events.Message) {
	var ev EmailEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		logger.Error("Malformed verification mail event", "error", err)
		return
	}

	verifyURL := fmt.Sprintf("%s/api/%s", w.baseURL, ev.Token)
	if err := w.mailer.SendVerificationEmail(ev.Email, verifyURL, ev.Token); err != nil {
		logger.Error("Failed to send verification email", "to", ev.Email, "error", err)
	}
}

func (w *Worker) handlePasswordReset(msg *events.Message) {
	var ev EmailEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		logger.Error("Malformed reset mail event", "error", err)
		return
	}

	resetURL := fmt.Sprintf("%s/forgot-password/%s", w.baseURL, ev.Token)
	if err := w.mailer.SendPasswordResetEmail(ev.Email, resetURL, ev.Token); err != nil {
		logger.Error("Failed to send password reset email", "to", ev.Email, "error", err)
	}
}

// DirectDispatcher sends mail in a goroutine when no event bus is configured.
type DirectDispatcher struct {
	mailer  mailer.Service
	baseURL string
}

func NewDirectDispatcher(m mailer.Service, baseURL string) *DirectDispatcher {
	return &DirectDispatcher{mailer: m, baseURL: baseURL}
}

func (d *DirectDispatcher) SendVerification(ctx context.Context, email, token string) {
	verifyURL := fmt.Sprintf("%s/api/%s", d.baseURL, token)
	go func() {
		if err := d.mailer.SendVerificationEmail(email, verifyURL, token); err != nil {
			logger.Error("Failed to send verification email", "to", email, "error", err)
		}
	}()
}

func (d *DirectDispatcher) SendPasswordReset(ctx context.Context, email, token string) {
	resetURL := fmt.Sprintf("%s/forgot-password/%s", d.baseURL, token)
	go func() {
		if err := d.mailer.SendPasswordResetEmail(email, resetURL, token); err != nil {
			logger.Error("Failed to send password reset email", "to", email, "error", err)
		}
	}()
}
