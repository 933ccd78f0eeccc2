package appctx

import (
	"context"
	"math/rand"
	"strings"
)

// Unexported key types prevent collisions with other packages.
type (
	runIDCtxKey  struct{}
	sourceCtxKey struct{}
)

// WithNewRunID ensures a run id is present in the context.
// An existing id is kept.
func WithNewRunID(ctx context.Context) context.Context {
	if _, ok := RunIDFrom(ctx); ok {
		return ctx
	}

	return context.WithValue(ctx, runIDCtxKey{}, generateRunID())
}

// RunIDFrom extracts the run id, if one exists.
func RunIDFrom(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(runIDCtxKey{}).(string)
	return runID, ok
}

// WithSource records where the operations being applied came from
// (for example "args" or a file name).
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceCtxKey{}, source)
}

func SourceFrom(ctx context.Context) (string, bool) {
	source, ok := ctx.Value(sourceCtxKey{}).(string)
	return source, ok
}

// generateRunID returns 16 random hex digits split in two groups.
func generateRunID() string {
	sb := strings.Builder{}
	sb.Grow(17)

	q := rand.Uint64()
	for i := 0; i < 16; i++ {
		r := uint8(q & 0xF)
		q >>= 4
		if r > 9 {
			r += 0x27 // 'a' - 10
		}
		sb.WriteByte(r + 0x30) // '0'
		if i == 7 {
			sb.WriteByte('-')
		}
	}

	return sb.String()
}
