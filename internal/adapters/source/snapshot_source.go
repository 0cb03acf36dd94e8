package source

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/platform/obs"
	"boulderhall-service/internal/ports"
	"context"

	"go.uber.org/zap"
)

// SnapshotSource wraps a HallSource. Successful fetches are written to the
// snapshot; when the upstream fails, the last snapshot is served instead.
// An empty or unreadable snapshot surfaces the upstream error unchanged.
type SnapshotSource struct {
	upstream ports.HallSource
	snapshot ports.HallSnapshot
	log      *zap.Logger
}

func NewSnapshotSource(upstream ports.HallSource, snapshot ports.HallSnapshot, log *zap.Logger) *SnapshotSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &SnapshotSource{upstream: upstream, snapshot: snapshot, log: log}
}

func (s *SnapshotSource) FetchHalls(ctx context.Context) ([]domain.Hall, error) {
	halls, err := s.upstream.FetchHalls(ctx)
	if err == nil {
		if serr := s.snapshot.SaveHalls(ctx, halls); serr != nil {
			s.log.Warn("save hall snapshot failed",
				zap.String("req_id", obs.RequestID(ctx)), zap.Error(serr))
		}
		return halls, nil
	}

	cached, lerr := s.snapshot.LoadHalls(ctx)
	if lerr != nil {
		s.log.Warn("load hall snapshot failed",
			zap.String("req_id", obs.RequestID(ctx)), zap.Error(lerr))
		return nil, err
	}
	if len(cached) == 0 {
		return nil, err
	}

	s.log.Warn("serving hall snapshot",
		zap.String("req_id", obs.RequestID(ctx)),
		zap.Int("count", len(cached)),
		zap.NamedError("upstream_err", err))
	return cached, nil
}
