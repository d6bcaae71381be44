package http1

import (
	"github.com/echoslam/gsi/internal/transport"
	"github.com/indigo-web/utils/uf"
)

// success is the only reply the protocol ever needs. Failure to deliver it
// makes the game retry the snapshot infinitely.
const success = "HTTP/1.1 200 OK\r\n" +
	"content-type: text/html\r\n" +
	"content-length: 0\r\n" +
	"connection: close\r\n" +
	"\r\n"

type Serializer struct{}

func NewSerializer() Serializer {
	return Serializer{}
}

func (Serializer) WriteSuccess(w transport.Writer) error {
	return w.Write(uf.S2B(success))
}
