package transport

// RequestState represents the state of the request's parsing.
type RequestState uint8

const (
	// Pending means more bytes are needed before the headers section can be
	// completed. It is control flow, not a failure.
	Pending RequestState = iota + 1
	HeadersCompleted
	Error
)

// Parser is a resumable stream parser: it may be fed a logical request split
// at arbitrary byte offsets and carries its state across calls. Once the
// headers section is complete, any already-received body bytes are handed
// back via extra.
type Parser interface {
	Parse(b []byte) (state RequestState, extra []byte, err error)
}

type Writer interface {
	Write([]byte) error
}

// Serializer renders the fixed wire-level reply. The protocol carries no
// semantic payload back to the game, so there is nothing request-specific
// about it.
type Serializer interface {
	WriteSuccess(w Writer) error
}
