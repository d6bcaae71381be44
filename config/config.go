package config

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}

	RequestLineSize struct {
		Default, Maximal int
	}
)

type (
	URI struct {
		// RequestLineSize is a shared buffer storing the method, path and
		// protocol among incomplete reads. The game always requests /, so
		// the defaults are tight.
		RequestLineSize RequestLineSize
	}

	Headers struct {
		// Number bounds how many headers a request may carry. Default is the
		// pre-allocation, Maximal is the hard limit.
		Number HeadersNumber
		// Space limits the amount of memory occupied by header keys and
		// values together.
		Space HeadersSpace
	}

	Body struct {
		// MaxSize caps the declared Content-Length. Requests announcing more
		// are rejected before any body byte is buffered.
		MaxSize int
	}

	NET struct {
		// ReadBufferSize is the size of the buffer used to read from a socket.
		ReadBufferSize int
		// ReadTimeout closes a connection if no data was received within the
		// period. The game heartbeats every 30 seconds by default, so the
		// timeout must stay well above that.
		ReadTimeout time.Duration
	}

	Metrics struct {
		// Registry enables prometheus counters when non-nil.
		Registry prometheus.Registerer
	}
)

// Config holds restrictions, limitations and pre-allocations used across the
// server. Modify values returned by Default() instead of constructing the
// struct manually.
type Config struct {
	URI     URI
	Headers Headers
	Body    Body
	NET     NET
	Metrics Metrics
}

// Default returns a config balanced for the traffic a single game client
// produces: ~7 headers and a 50-60kb JSON snapshot per request.
func Default() *Config {
	return &Config{
		URI: URI{
			RequestLineSize: RequestLineSize{
				Default: 256,
				Maximal: 4 * 1024,
			},
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 64,
			},
			Space: HeadersSpace{
				Default: 1024,
				Maximal: 8 * 1024,
			},
		},
		Body: Body{
			MaxSize: 2 * 1024 * 1024,
		},
		NET: NET{
			ReadBufferSize: 8 * 1024,
			ReadTimeout:    90 * time.Second,
		},
	}
}
