package status

import "errors"

// Code classifies an error by how the connection must react to it. The
// classification matters more than the concrete value: anything but Shutdown
// terminates the affected connection only.
type Code uint8

const (
	// Malformed tells that the received bytes violate the expected HTTP/1.x
	// grammar, including the absence of a Content-Length header, as the game
	// client is known to always send one.
	Malformed Code = iota + 1
	// TooLarge tells that the request line, the headers section or the
	// declared body length exceeds a configured cap.
	TooLarge
	// UnsupportedMethod tells that the request was parsed fine, but isn't
	// a POST.
	UnsupportedMethod
	// MissingBody tells that the request reached dispatch with no framed body.
	MissingBody
	// Transport covers socket-level failures, including the peer closing the
	// connection before the declared body arrived.
	Transport
	// Shutdown is reported by the accept loop when it was stopped on purpose.
	Shutdown
)

type Error struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return Error{
		Code:    code,
		Message: message,
	}
}

func (e Error) Error() string {
	return e.Message
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var e Error
	return errors.As(err, &e) && e.Code == code
}

var (
	ErrBadRequest          = NewError(Malformed, "malformed request")
	ErrBadProtocol         = NewError(Malformed, "unsupported protocol version")
	ErrBadContentLength    = NewError(Malformed, "invalid Content-Length value")
	ErrLengthRequired      = NewError(Malformed, "missing Content-Length header")
	ErrMethodNotApplicable = NewError(Malformed, "unrecognized request method")

	ErrTooLongRequestLine   = NewError(TooLarge, "request line is too long")
	ErrHeaderFieldsTooLarge = NewError(TooLarge, "too large headers section")
	ErrTooManyHeaders       = NewError(TooLarge, "too many headers")
	ErrBodyTooLarge         = NewError(TooLarge, "request body is too large")

	ErrMethodNotAllowed = NewError(UnsupportedMethod, "method not allowed")
	ErrMissingBody      = NewError(MissingBody, "request carries no body")

	ErrPeerDisconnected = NewError(Transport, "peer closed the connection")

	ErrShutdown = NewError(Shutdown, "graceful shutdown")
)
