package ingest

import (
	"testing"

	"github.com/echoslam/gsi/internal/transport"
	"github.com/echoslam/gsi/method"
	"github.com/echoslam/gsi/status"
	"github.com/stretchr/testify/require"
)

func TestValidateMethod(t *testing.T) {
	req := transport.NewRequest(0)
	req.Method = method.POST
	require.NoError(t, ValidateMethod(req))

	for _, m := range []method.Method{method.GET, method.HEAD, method.PUT, method.DELETE} {
		req.Method = m
		require.ErrorIs(t, ValidateMethod(req), status.ErrMethodNotAllowed)
	}
}

func TestValidateBody(t *testing.T) {
	req := transport.NewRequest(0)
	require.ErrorIs(t, ValidateBody(req), status.ErrMissingBody)

	req.Body = []byte{}
	require.NoError(t, ValidateBody(req))

	req.Body = []byte(`{"hero":"pa"}`)
	require.NoError(t, ValidateBody(req))
}
