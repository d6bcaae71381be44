package status

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	require.True(t, Is(ErrBadContentLength, Malformed))
	require.True(t, Is(ErrBodyTooLarge, TooLarge))
	require.False(t, Is(ErrBodyTooLarge, Malformed))
	require.False(t, Is(nil, Malformed))
}

func TestIsWrapped(t *testing.T) {
	err := fmt.Errorf("reading body: %w", ErrPeerDisconnected)
	require.True(t, Is(err, Transport))
}
