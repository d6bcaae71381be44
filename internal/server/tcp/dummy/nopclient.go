package dummy

import (
	"io"
	"net"
)

// NopClient models a peer that connects, sends nothing and hangs up: every
// read reports EOF, writes are swallowed.
type NopClient struct{}

func NewNopClient() NopClient {
	return NopClient{}
}

func (NopClient) Read() ([]byte, error) {
	return nil, io.EOF
}

func (NopClient) Unread([]byte) {}

func (NopClient) Write([]byte) error {
	return nil
}

func (NopClient) Remote() net.Addr {
	return nil
}

func (NopClient) Close() error {
	return nil
}
