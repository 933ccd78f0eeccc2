package appctx

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithNewRunID(t *testing.T) {
	ctx := WithNewRunID(context.Background())

	id, ok := RunIDFrom(ctx)
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{8}$`), id)

	again, _ := RunIDFrom(WithNewRunID(ctx))
	assert.Equal(t, id, again)
}

func TestSource(t *testing.T) {
	_, ok := SourceFrom(context.Background())
	assert.False(t, ok)

	src, ok := SourceFrom(WithSource(context.Background(), "ops.txt"))
	assert.True(t, ok)
	assert.Equal(t, "ops.txt", src)
}
