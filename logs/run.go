package logs

import (
	"context"
	"crypto/rand"
)

// RunID identifies one pipeline run in the logs.
type RunID string

type runKey struct{}

// WithRun returns a context carrying a fresh RunID. Records logged with
// that context are tagged run=<id>.
func WithRun(ctx context.Context) (context.Context, RunID) {
	id := RunID(rand.Text()[:10])
	return context.WithValue(ctx, runKey{}, id), id
}

// RunOf returns the RunID carried by ctx, if any.
func RunOf(ctx context.Context) (RunID, bool) {
	id, ok := ctx.Value(runKey{}).(RunID)
	return id, ok
}
