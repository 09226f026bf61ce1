package service

import (
	"context"

	"github.com/alexanderramin/dayline/internal/domain"
	"github.com/charmbracelet/log"
)

// RewardEvent describes one completed item.
type RewardEvent struct {
	Date  string
	Index int
	Kind  domain.ItemKind
	Label string
}

// RewardSignal is notified after a completion commits, at most once per
// Uncompleted -> Completed transition.
type RewardSignal interface {
	Grant(ctx context.Context, event RewardEvent)
}

// NoopRewardSignal ignores all grants.
type NoopRewardSignal struct{}

func (NoopRewardSignal) Grant(context.Context, RewardEvent) {}

type logRewardSignal struct {
	logger *log.Logger
}

// NewLogRewardSignal records grants on logger.
func NewLogRewardSignal(logger *log.Logger) RewardSignal {
	if logger == nil {
		return NoopRewardSignal{}
	}
	return &logRewardSignal{logger: logger}
}

func (r *logRewardSignal) Grant(_ context.Context, e RewardEvent) {
	r.logger.Info("reward granted", "date", e.Date, "index", e.Index, "kind", e.Kind, "label", e.Label)
}
