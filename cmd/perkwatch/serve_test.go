package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perkwatch/perkwatch/internal/config"
)

func TestShutdownContext_HasDeadline(t *testing.T) {
	ctx, cancel := shutdownContext()
	defer cancel()

	require.NoError(t, ctx.Err(), "shutdown context must be live so draining can make progress")

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(shutdownTimeout), deadline, time.Second)
	assert.NotErrorIs(t, ctx.Err(), context.Canceled)
}

func TestApplyServeOverrides(t *testing.T) {
	cfg := config.NewAppConfigWithOptions()

	t.Run("flags override config", func(t *testing.T) {
		got := applyServeOverrides(cfg, "127.0.0.1", 9000)
		assert.Equal(t, "127.0.0.1:9000", got.Addr())
	})

	t.Run("zero values leave config untouched", func(t *testing.T) {
		got := applyServeOverrides(cfg, "", 0)
		assert.Equal(t, cfg.Addr(), got.Addr())
	})
}
