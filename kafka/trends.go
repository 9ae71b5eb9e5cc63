package kafka

import (
	"context"

	"github.com/vanzic/Project-Rivo/factory"
	"github.com/vanzic/Project-Rivo/types"
)

// NewTrendHandler returns a handler that renders a video for every trend
// message on the topic. Malformed or keyless messages are skipped.
func NewTrendHandler(f *factory.Factory) MessageHandler {
	return &TypedMessageHandler[types.TrendOutput]{
		Validate: func(trend *types.TrendOutput) bool {
			return trend.TrendKey != ""
		},
		Process: func(ctx context.Context, trend *types.TrendOutput) error {
			return f.ProcessTrend(ctx, trend)
		},
		AlwaysMark: true,
	}
}
