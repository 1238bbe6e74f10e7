package workers

import (
	"context"
	"time"

	"pharmacare_backend/internal/logger"
	"pharmacare_backend/internal/repositories"
)

const tokenCleanupInterval = 1 * time.Hour

// TokenCleanupWorker purges expired refresh tokens on a ticker so the
// sessions table does not grow without bound.
type TokenCleanupWorker struct {
	tokens repositories.RefreshTokenRepository
}

func NewTokenCleanupWorker(tokens repositories.RefreshTokenRepository) *TokenCleanupWorker {
	return &TokenCleanupWorker{tokens: tokens}
}

// Start runs the worker until the context is cancelled. One pass runs
// immediately on startup.
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	w.runOnce()

	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token cleanup worker stopped")
			return
		case <-ticker.C:
			w.runOnce()
		}
	}
}

func (w *TokenCleanupWorker) runOnce() {
	deleted, err := w.tokens.DeleteExpired(time.Now())
	logger.WorkerLog("token_cleanup", "purge_expired", err)
	if err == nil && deleted > 0 {
		logger.Info("expired refresh tokens purged", "count", deleted)
	}
}
