package address

import (
	"fmt"
	"strings"
)

const DefaultHost = "0.0.0.0"

// Parse normalizes the URI the game's .cfg file points at into a host:port
// suitable for net.Listen. The scheme, if any, must be plain http; anything
// the server cannot actually serve is rejected here rather than at bind time.
func Parse(uri string) (addr string, err error) {
	addr = uri

	if scheme, rest, found := strings.Cut(addr, "://"); found {
		if !strings.EqualFold(scheme, "http") {
			return "", fmt.Errorf("unsupported scheme: %s", scheme)
		}

		addr = rest
	}

	if slash := strings.IndexByte(addr, '/'); slash != -1 {
		addr = addr[:slash]
	}

	colon := strings.IndexByte(addr, ':')
	if colon == -1 || len(addr[colon+1:]) == 0 {
		return "", fmt.Errorf("address must include a port: %s", uri)
	}

	if colon == 0 {
		// only the port is presented
		addr = DefaultHost + addr
	}

	return addr, nil
}
