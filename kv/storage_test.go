package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Run("case-insensitive lookup", func(t *testing.T) {
		s := New().Add("Content-Length", "13")
		require.Equal(t, "13", s.Value("content-length"))
		require.True(t, s.Has("CONTENT-LENGTH"))
		require.False(t, s.Has("content-type"))
	})

	t.Run("first value wins", func(t *testing.T) {
		s := New().Add("accept", "text/html").Add("Accept", "*/*")
		value, found := s.Get("accept")
		require.True(t, found)
		require.Equal(t, "text/html", value)
	})

	t.Run("insertion order", func(t *testing.T) {
		s := NewPrealloc(3).Add("a", "1").Add("b", "2").Add("a", "3")
		require.Equal(t, []string{"a", "b", "a"}, s.Keys())

		var values []string
		for _, value := range s.Iter() {
			values = append(values, value)
		}
		require.Equal(t, []string{"1", "2", "3"}, values)
	})

	t.Run("clear", func(t *testing.T) {
		s := New().Add("a", "1")
		require.Equal(t, 1, s.Len())
		require.Equal(t, 0, s.Clear().Len())
		require.Empty(t, s.Value("a"))
	})
}
