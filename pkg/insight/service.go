// Package insight answers transaction insight requests: it fetches the UI
// document for the transaction target, renders it and decides the severity.
package insight

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/goliatone/go-insightui/pkg/component"
	"github.com/goliatone/go-insightui/pkg/fetch"
	"github.com/goliatone/go-insightui/pkg/renderer"
	"github.com/goliatone/go-insightui/pkg/schema"
)

// DefaultFailureMessage is shown when the document cannot be fetched.
const DefaultFailureMessage = "Unable to load data. Please try again later."

// Fetch outcomes reported to recorders.
const (
	OutcomeOK      = "ok"
	OutcomeHTTP    = "http_error"
	OutcomeInvalid = "invalid_payload"
	OutcomeNetwork = "network_error"
)

// Transaction carries the fields of an outgoing transaction the service needs.
type Transaction struct {
	To      string `json:"to"`
	Origin  string `json:"origin"`
	ChainID string `json:"chainId"`
}

// Response is the rendered insight. Severity is "critical" or empty.
type Response struct {
	Content  *component.Box
	Severity string
	// Reason holds the fetch failure string when the error document was shown.
	Reason string
}

// Critical reports whether the host should raise its alert level.
func (r Response) Critical() bool {
	return r.Severity == schema.SeverityCritical
}

// Recorder observes service activity.
type Recorder interface {
	FetchCompleted(outcome string, elapsed time.Duration)
	InsightRendered(critical bool)
}

// Option customises a Service.
type Option func(*Service)

// WithRenderer replaces the default renderer.
func WithRenderer(r *renderer.Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder registers a recorder.
func WithRecorder(recorder Recorder) Option {
	return func(s *Service) {
		s.recorder = recorder
	}
}

// WithFailureMessage overrides the text shown when fetching fails.
func WithFailureMessage(message string) Option {
	return func(s *Service) {
		if message != "" {
			s.failureMessage = message
		}
	}
}

// Service wires a fetcher to the renderer.
type Service struct {
	fetcher        fetch.Fetcher
	renderer       *renderer.Renderer
	logger         *slog.Logger
	recorder       Recorder
	failureMessage string
	now            func() time.Time
}

// New constructs a Service around fetcher.
func New(fetcher fetch.Fetcher, opts ...Option) (*Service, error) {
	if fetcher == nil {
		return nil, errors.New("insight: fetcher is required")
	}
	s := &Service{
		fetcher:        fetcher,
		renderer:       renderer.New(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		failureMessage: DefaultFailureMessage,
		now:            time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// OnTransaction fetches and renders the insight for tx. It always returns a
// renderable response: fetch failures are shown as an error banner and never
// mark the response critical.
func (s *Service) OnTransaction(ctx context.Context, tx Transaction) Response {
	start := s.now()
	payload, err := s.fetcher.Fetch(ctx, fetch.Request{
		Address: tx.To,
		Origin:  tx.Origin,
		ChainID: tx.ChainID,
	})
	s.recordFetch(err, s.now().Sub(start))

	if err != nil {
		reason := fetch.Reason(err)
		s.logger.Warn("insight: document unavailable", "to", tx.To, "chain_id", tx.ChainID, "reason", reason)
		resp := Response{
			Content: s.renderer.Render(renderer.ErrorElements(s.failureMessage)),
			Reason:  reason,
		}
		s.recordRender(resp)
		return resp
	}

	return s.RenderPayload(payload)
}

// RenderPayload renders a document obtained elsewhere, such as a local fixture.
func (s *Service) RenderPayload(payload schema.Payload) Response {
	resp := Response{Content: s.renderer.Render(payload.UI)}
	if payload.Critical() {
		resp.Severity = schema.SeverityCritical
	}
	s.recordRender(resp)
	return resp
}

func (s *Service) recordFetch(err error, elapsed time.Duration) {
	if s.recorder == nil {
		return
	}
	s.recorder.FetchCompleted(Outcome(err), elapsed)
}

func (s *Service) recordRender(resp Response) {
	if s.recorder == nil {
		return
	}
	s.recorder.InsightRendered(resp.Critical())
}

// Outcome classifies a fetch error for metrics labels.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if errors.Is(err, fetch.ErrInvalidPayload) {
		return OutcomeInvalid
	}
	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) && fetchErr.Status != 0 {
		return OutcomeHTTP
	}
	return OutcomeNetwork
}
