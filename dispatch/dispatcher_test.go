package dispatch

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatchOrder(t *testing.T) {
	var order []int
	handlers := []Handler{
		Func(func([]byte) { order = append(order, 1) }),
		Func(func([]byte) { order = append(order, 2) }),
		Func(func([]byte) { order = append(order, 3) }),
	}

	failed := New(discard(), handlers).Dispatch([]byte("{}"))
	require.Zero(t, failed)
	require.Equal(t, []int{1, 2, 3}, order)
}

func TestDispatchIsolatesPanics(t *testing.T) {
	var got []string
	handlers := []Handler{
		Func(func(event []byte) { got = append(got, string(event)) }),
		Func(func([]byte) { panic("deserialization gone wrong") }),
		Func(func(event []byte) { got = append(got, string(event)) }),
	}

	failed := New(discard(), handlers).Dispatch([]byte(`{"hero":"pa"}`))
	require.Equal(t, 1, failed)
	require.Equal(t, []string{`{"hero":"pa"}`, `{"hero":"pa"}`}, got)
}

func TestTyped(t *testing.T) {
	type snapshot struct {
		Hero string `json:"hero"`
	}

	t.Run("decodes and forwards", func(t *testing.T) {
		var received snapshot
		h := Typed(func(s snapshot) { received = s })
		h.Handle([]byte(`{"hero":"pa"}`))
		require.Equal(t, "pa", received.Hero)
	})

	t.Run("skips undecodable events", func(t *testing.T) {
		calls := 0
		h := Typed(func(snapshot) { calls++ })
		h.Handle([]byte(`{"hero":`))
		require.Zero(t, calls)
	})
}
