package http1

import (
	"errors"
	"io"

	"github.com/echoslam/gsi/internal/server/tcp"
	"github.com/echoslam/gsi/status"
)

// ReadBody collects exactly length body bytes off the client, accumulating
// across however many socket reads it takes. Bytes past the declared length
// are returned to the client untouched. A peer disconnecting mid-body is a
// transport failure, not a short body.
func ReadBody(client tcp.Client, length int) ([]byte, error) {
	body := make([]byte, 0, length)

	for len(body) < length {
		data, err := client.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = status.ErrPeerDisconnected
			}

			return nil, err
		}

		if need := length - len(body); len(data) > need {
			client.Unread(data[need:])
			data = data[:need]
		}

		body = append(body, data...)
	}

	return body, nil
}
