package transport

import (
	"net"

	"github.com/echoslam/gsi/kv"
	"github.com/echoslam/gsi/method"
)

// Request is a single parsed game state integration request. It is reused
// across parser resets, so none of the fields may be retained past the
// connection's lifetime.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the request target as sent, without any decoding. The game
	// always posts to the path configured in its .cfg file, usually /.
	Path string
	// Headers holds non-normalized header pairs; lookup is case-insensitive.
	Headers *kv.Storage
	// ContentLength is the declared body length. Valid only if
	// HasContentLength is set.
	ContentLength int
	// HasContentLength tells whether a Content-Length header was met at all.
	// Its absence is fatal for this protocol.
	HasContentLength bool
	// Body is the framed body, exactly ContentLength bytes long. A zero
	// declared length yields an empty non-nil slice.
	Body []byte
	// Remote holds the peer address, used for logging only.
	Remote net.Addr
}

func NewRequest(headersPrealloc int) *Request {
	return &Request{
		Headers: kv.NewPrealloc(headersPrealloc),
	}
}

// Reset prepares the request for the next framing round.
func (r *Request) Reset() {
	r.Method = method.Unknown
	r.Path = ""
	r.Headers.Clear()
	r.ContentLength = 0
	r.HasContentLength = false
	r.Body = nil
}
