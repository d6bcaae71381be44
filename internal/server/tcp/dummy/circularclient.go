package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/utils/unreader"
)

// CircularClient replays the data it was initialised with, one chunk per
// read. With OneTime set, the client reports io.EOF once all the chunks were
// consumed, which imitates a peer that sent a single request and closed.
type CircularClient struct {
	unreader  *unreader.Unreader
	data      [][]byte
	written   [][]byte
	pointer   int
	closed    bool
	oneTime   bool
	exhausted bool
}

func NewCircularClient(data ...[]byte) *CircularClient {
	return &CircularClient{
		unreader: new(unreader.Unreader),
		data:     data,
		pointer:  -1,
	}
}

func (c *CircularClient) Read() ([]byte, error) {
	if c.closed || (c.exhausted && c.oneTime) {
		return nil, io.EOF
	}

	return c.unreader.PendingOr(func() ([]byte, error) {
		c.pointer++

		if c.pointer == len(c.data) {
			if c.oneTime {
				c.exhausted = true
				return nil, io.EOF
			}

			c.pointer = 0
		}

		return c.data[c.pointer], nil
	})
}

func (c *CircularClient) Unread(takeback []byte) {
	c.unreader.Unread(takeback)
}

func (c *CircularClient) Write(b []byte) error {
	c.written = append(c.written, append([]byte(nil), b...))
	return nil
}

// Written exposes everything the server wrote back.
func (c *CircularClient) Written() [][]byte {
	return c.written
}

func (*CircularClient) Remote() net.Addr {
	return nil
}

func (c *CircularClient) Close() error {
	c.closed = true
	return nil
}

// OneTime makes the client disconnect after all the chunks were read once.
func (c *CircularClient) OneTime() *CircularClient {
	c.oneTime = true
	return c
}
