// README: Assistant service; orchestrates key check, payload build, single upstream call, and normalization.
package assistant

import (
	"context"
	"log"

	"voyago/internal/ai"
)

// Recorder receives one best-effort usage notification per handled request.
// Implementations must be cheap; failures are logged, never surfaced.
type Recorder interface {
	Record(ctx context.Context, kind Kind, ok bool) error
}

// Service is the request dispatcher. It is stateless: every call is
// independent and performs at most one upstream invocation.
type Service struct {
	apiKey   string
	builder  *Builder
	invoker  ai.Invoker
	recorder Recorder
}

// NewService wires the dispatcher. recorder may be nil when the usage ledger
// is disabled.
func NewService(apiKey string, builder *Builder, invoker ai.Invoker, recorder Recorder) *Service {
	return &Service{apiKey: apiKey, builder: builder, invoker: invoker, recorder: recorder}
}

// Handle processes one typed request end to end and returns the normalized
// result. Errors are terminal; nothing is retried and no partial result is
// ever returned.
func (s *Service) Handle(ctx context.Context, kind Kind, body map[string]any) (any, error) {
	// The key check comes first so a misconfigured server never builds a
	// payload or touches the network.
	if s.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	spec, err := s.builder.Build(kind, body)
	if err != nil {
		return nil, err
	}

	raw, err := s.invoker.Invoke(ctx, spec)
	if err != nil {
		s.record(ctx, kind, false)
		return nil, err
	}

	result, err := Normalize(kind, raw)
	if err != nil {
		s.record(ctx, kind, false)
		return nil, err
	}

	s.record(ctx, kind, true)
	return result, nil
}

func (s *Service) record(ctx context.Context, kind Kind, ok bool) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, kind, ok); err != nil {
		log.Printf("usage record failed for %s: %v", kind, err)
	}
}
