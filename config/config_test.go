package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.GreaterOrEqual(t, cfg.URI.RequestLineSize.Maximal, cfg.URI.RequestLineSize.Default)
	require.GreaterOrEqual(t, cfg.Headers.Number.Maximal, cfg.Headers.Number.Default)
	require.GreaterOrEqual(t, cfg.Headers.Space.Maximal, cfg.Headers.Space.Default)
	require.Positive(t, cfg.Body.MaxSize)
	require.Positive(t, cfg.NET.ReadBufferSize)
	require.Positive(t, cfg.NET.ReadTimeout)
	require.Nil(t, cfg.Metrics.Registry)
}
