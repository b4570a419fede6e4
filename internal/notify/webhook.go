package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/feedback-hub/internal/metrics"
)

const (
	EventReviewCreated = "review.created"

	defaultBacklog = 100
)

type ReviewPayload struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"storeId"`
	Rating     *int      `json:"rating"`
	Comment    string    `json:"comment"`
	Language   string    `json:"language"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Payload struct {
	Event             string        `json:"event"`
	Review            ReviewPayload `json:"review"`
	StoreName         string        `json:"storeName"`
	NotificationEmail string        `json:"notificationEmail"`
}

type delivery struct {
	url     string
	payload Payload
}

// Notifier delivers payloads without blocking the caller.
type Notifier interface {
	Notify(url string, p Payload)
}

// Webhook posts payloads to the configured URL from a single background
// worker. Outbound calls are throttled by a token bucket.
type Webhook struct {
	client  *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
	queue   chan delivery

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

type Options struct {
	Timeout time.Duration
	// RPS and Burst bound outbound calls; zero RPS disables throttling.
	RPS   float64
	Burst int
}

func NewWebhook(opts Options, log zerolog.Logger) *Webhook {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	lim := rate.NewLimiter(rate.Inf, 0)
	if opts.RPS > 0 {
		if opts.Burst <= 0 {
			opts.Burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(opts.RPS), opts.Burst)
	}

	w := &Webhook{
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: lim,
		log:     log.With().Str("component", "webhook").Logger(),
		queue:   make(chan delivery, defaultBacklog),
		done:    make(chan struct{}),
	}

	go w.worker()
	return w
}

func (w *Webhook) Notify(url string, p Payload) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed || url == "" {
		return
	}

	select {
	case w.queue <- delivery{url: url, payload: p}:
	default:
		metrics.ObserveWebhook("dropped")
		w.log.Warn().Str("event", p.Event).Msg("webhook queue full, dropping delivery")
	}
}

func (w *Webhook) worker() {
	defer close(w.done)

	for d := range w.queue {
		if err := w.deliver(context.Background(), d); err != nil {
			metrics.ObserveWebhook("failed")
			w.log.Error().Err(err).Str("url", d.url).Msg("webhook delivery failed")
			continue
		}
		metrics.ObserveWebhook("delivered")
	}
}

func (w *Webhook) deliver(ctx context.Context, d delivery) error {
	if err := w.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(d.payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "feedbackhub-webhook/1")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}
	return nil
}

// Close stops accepting deliveries and waits for the queue to drain or
// ctx to expire.
func (w *Webhook) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Notifier = (*Webhook)(nil)

// Noop discards every payload.
type Noop struct{}

func (Noop) Notify(string, Payload) {}
