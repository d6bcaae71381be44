package ingest

import (
	"github.com/echoslam/gsi/internal/transport"
	"github.com/echoslam/gsi/method"
	"github.com/echoslam/gsi/status"
)

// ValidateMethod admits POST only. The game never sends anything else; a
// foreign method means a foreign client.
func ValidateMethod(req *transport.Request) error {
	if req.Method != method.POST {
		return status.ErrMethodNotAllowed
	}

	return nil
}

// ValidateBody requires a framed body. A zero-length body is fine as long as
// it was declared; reaching dispatch without framing at all is not.
func ValidateBody(req *transport.Request) error {
	if req.Body == nil {
		return status.ErrMissingBody
	}

	return nil
}
