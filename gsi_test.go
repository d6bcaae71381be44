package gsi

import (
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testBody = `{"provider": {"name": "Dota 2", "appid": 570, "version": 47, ` +
	`"timestamp": 1688514013}, "player": {}, "draft": {}, "auth": {"token": "hello1234"}}`

func buildRequest(body string) string {
	return "POST / HTTP/1.1\r\n" +
		"user-agent: Valve/Steam HTTP Client 1.0 (570)\r\n" +
		"content-type: application/json\r\n" +
		"accept: text/html,*/*;q=0.9\r\n" +
		fmt.Sprintf("content-length: %d\r\n", len(body)) +
		"\r\n" +
		body
}

func startServer(t *testing.T, server *Server) (stop func()) {
	t.Helper()

	started := make(chan struct{})
	server.NotifyOnStart(func() {
		close(started)
	})

	done := make(chan error)
	go func() {
		done <- server.Run()
	}()

	select {
	case <-started:
	case err := <-done:
		t.Fatalf("server did not start: %s", err)
	}

	return func() {
		require.NoError(t, server.Stop())
		require.NoError(t, <-done)
	}
}

func exchange(t *testing.T, addr, raw string) string {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	reply, err := io.ReadAll(conn)
	require.NoError(t, err)

	return string(reply)
}

func TestServerHandlesEvents(t *testing.T) {
	const addr = "127.0.0.1:30080"

	first := make(chan []byte, 2)
	second := make(chan []byte, 2)

	server := New(addr).
		RegisterFunc(func(event []byte) {
			first <- append([]byte(nil), event...)
		}).
		RegisterFunc(func(event []byte) {
			second <- append([]byte(nil), event...)
		})

	stop := startServer(t, server)
	defer stop()

	for i := 0; i < 2; i++ {
		reply := exchange(t, addr, buildRequest(testBody))
		require.True(t, strings.HasPrefix(reply, "HTTP/1.1 200 OK\r\n"), reply)
	}

	for i := 0; i < 2; i++ {
		require.Equal(t, testBody, string(<-first))
		require.Equal(t, testBody, string(<-second))
	}
}

func TestServerIgnoresForeignRequests(t *testing.T) {
	const addr = "127.0.0.1:30081"

	invoked := make(chan struct{}, 1)
	server := New(addr).RegisterFunc(func([]byte) {
		invoked <- struct{}{}
	})

	stop := startServer(t, server)
	defer stop()

	reply := exchange(t, addr, "GET / HTTP/1.1\r\n\r\n")
	require.Empty(t, reply, "rejected requests receive no response")

	select {
	case <-invoked:
		t.Fatal("handler must not be invoked")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestServerFragmentedDelivery(t *testing.T) {
	const addr = "127.0.0.1:30082"

	events := make(chan []byte, 1)
	server := New(addr).RegisterFunc(func(event []byte) {
		events <- append([]byte(nil), event...)
	})

	stop := startServer(t, server)
	defer stop()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()

	raw := buildRequest(testBody)
	for i := 0; i < len(raw); i += 19 {
		end := min(i+19, len(raw))
		_, err = conn.Write([]byte(raw[i:end]))
		require.NoError(t, err)
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	reply, err := io.ReadAll(conn)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(reply), "HTTP/1.1 200 OK\r\n"))
	require.Equal(t, testBody, string(<-events))
}

func TestServerRunFailures(t *testing.T) {
	t.Run("unsupported scheme", func(t *testing.T) {
		require.Error(t, New("https://127.0.0.1:30083").Run())
	})

	t.Run("address already in use", func(t *testing.T) {
		sock, err := net.Listen("tcp", "127.0.0.1:30084")
		require.NoError(t, err)
		defer func() {
			_ = sock.Close()
		}()

		require.Error(t, New("127.0.0.1:30084").Run())
	})
}
