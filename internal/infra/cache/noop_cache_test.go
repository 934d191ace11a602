package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopCache_AlwaysMisses(t *testing.T) {
	c := NewNoop()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "customers", []string{"a", "b"}))

	var dest []string
	hit, err := c.Get(ctx, "customers", &dest)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, dest)

	assert.NoError(t, c.Invalidate(ctx, "customers", "platforms"))
}
