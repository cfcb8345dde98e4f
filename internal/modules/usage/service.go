// README: Usage ledger service; best-effort recording and month-to-date summaries.
package usage

import (
	"context"

	"voyago/internal/modules/assistant"
)

// Service records handled assistant requests and serves live summaries. It
// is observability only: nothing here gates or throttles a request.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Record implements assistant.Recorder. The ledger row and the live counter
// are independent; a failure in one does not block the other.
func (s *Service) Record(ctx context.Context, kind assistant.Kind, ok bool) error {
	status := "ok"
	if !ok {
		status = "error"
	}
	insertErr := s.store.Insert(ctx, string(kind), status)
	if err := s.store.Bump(ctx, string(kind)); err != nil {
		return err
	}
	return insertErr
}

// Summary returns the month-to-date request count per kind.
func (s *Service) Summary(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(assistant.Kinds()))
	for _, kind := range assistant.Kinds() {
		n, err := s.store.Counter(ctx, string(kind))
		if err != nil {
			return nil, err
		}
		out[string(kind)] = n
	}
	return out, nil
}
