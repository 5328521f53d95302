package cmdutil

import (
	"context"

	"go.uber.org/zap"

	"bowling/core/game"
)

// FeedRolls records rolls on g in order, stopping at the first rejected roll
// or when ctx is cancelled. It returns the number of accepted rolls and the
// error that stopped it.
func FeedRolls(ctx context.Context, g *game.Game, rolls []int, log *zap.Logger) (int, error) {
	for i, pins := range rolls {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := g.Roll(pins); err != nil {
			log.Debug("roll rejected", zap.Int("roll", i+1), zap.Int("pins", pins), zap.Error(err))
			return i, err
		}
		log.Debug("roll",
			zap.Int("roll", i+1),
			zap.Int("pins", pins),
			zap.Int("score", g.Score()),
			zap.Bool("done", g.Done()),
		)
	}
	return len(rolls), nil
}
