package http1

import (
	"bytes"
	"fmt"

	"github.com/echoslam/gsi/config"
	"github.com/echoslam/gsi/internal/transport"
	"github.com/echoslam/gsi/method"
	"github.com/echoslam/gsi/status"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

type parserState uint8

const (
	eMethod parserState = iota + 1
	ePath
	eHeaderKey
	eContentLength
	eContentLengthCR
	eHeaderValue
	eHeaderValueCRLFCR
)

var (
	protoHTTP11 = []byte("HTTP/1.1")
	protoHTTP10 = []byte("HTTP/1.0")
)

// Parser is a stream-based request framer. It modifies the request object by
// pointer and survives arbitrary splits of the input: any call may return
// Pending, in which case the already-consumed bytes are buffered and the next
// call continues where the previous one stopped. When the headers section
// completes, the state HeadersCompleted is returned and all the pending data
// is attached as an extra. The body is collected separately.
type Parser struct {
	request         *transport.Request
	requestLineBuff *buffer.Buffer
	headersBuff     *buffer.Buffer
	headerKey       string
	headersNumber   int
	maxHeaders      int
	maxBodySize     int
	contentLength   int
	seenDigit       bool
	state           parserState
}

func NewParser(cfg *config.Config, request *transport.Request, requestLine, headers *buffer.Buffer) *Parser {
	return &Parser{
		state:           eMethod,
		request:         request,
		requestLineBuff: requestLine,
		headersBuff:     headers,
		maxHeaders:      cfg.Headers.Number.Maximal,
		maxBodySize:     cfg.Body.MaxSize,
	}
}

func (p *Parser) Parse(data []byte) (state transport.RequestState, extra []byte, err error) {
	request := p.request
	requestLineBuff := p.requestLineBuff
	headersBuff := p.headersBuff

	switch p.state {
	case eMethod:
		goto method
	case ePath:
		goto path
	case eHeaderKey:
		goto headerKey
	case eContentLength:
		goto contentLength
	case eContentLengthCR:
		goto contentLengthCR
	case eHeaderValue:
		goto headerValue
	case eHeaderValueCRLFCR:
		goto headerValueCRLFCR
	default:
		panic(fmt.Sprintf("BUG: unexpected state: %v", p.state))
	}

method:
	{
		sp := bytes.IndexByte(data, ' ')
		if sp == -1 {
			if !requestLineBuff.Append(data) {
				return transport.Error, nil, status.ErrTooLongRequestLine
			}

			return transport.Pending, nil, nil
		}

		var methodValue []byte
		if requestLineBuff.SegmentLength() == 0 {
			methodValue = data[:sp]
		} else {
			if !requestLineBuff.Append(data[:sp]) {
				return transport.Error, nil, status.ErrTooLongRequestLine
			}

			methodValue = requestLineBuff.Finish()
		}

		if len(methodValue) == 0 {
			return transport.Error, nil, status.ErrBadRequest
		}

		request.Method = method.Parse(uf.B2S(methodValue))
		if request.Method == method.Unknown {
			return transport.Error, nil, status.ErrMethodNotApplicable
		}

		data = data[sp+1:]
		p.state = ePath
		goto path
	}

path:
	{
		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			if !requestLineBuff.Append(data) {
				return transport.Error, nil, status.ErrTooLongRequestLine
			}

			return transport.Pending, nil, nil
		}

		if !requestLineBuff.Append(data[:lf]) {
			return transport.Error, nil, status.ErrTooLongRequestLine
		}

		pathAndProto := requestLineBuff.Finish()
		sp := bytes.LastIndexByte(pathAndProto, ' ')
		if sp == -1 {
			return transport.Error, nil, status.ErrBadRequest
		}

		reqPath, reqProto := pathAndProto[:sp], pathAndProto[sp+1:]
		if len(reqProto) > 0 && reqProto[len(reqProto)-1] == '\r' {
			reqProto = reqProto[:len(reqProto)-1]
		}

		if len(reqPath) == 0 {
			return transport.Error, nil, status.ErrBadRequest
		}

		if !bytes.Equal(reqProto, protoHTTP11) && !bytes.Equal(reqProto, protoHTTP10) {
			return transport.Error, nil, status.ErrBadProtocol
		}

		request.Path = uf.B2S(reqPath)
		data = data[lf+1:]
		p.state = eHeaderKey
		goto headerKey
	}

headerKey:
	{
		if len(data) == 0 {
			return transport.Pending, nil, nil
		}

		switch data[0] {
		case '\n':
			p.reset()

			return transport.HeadersCompleted, data[1:], nil
		case '\r':
			data = data[1:]
			p.state = eHeaderValueCRLFCR
			goto headerValueCRLFCR
		}

		colon := bytes.IndexByte(data, ':')
		if colon == -1 {
			if !headersBuff.Append(data) {
				return transport.Error, nil, status.ErrHeaderFieldsTooLarge
			}

			return transport.Pending, nil, nil
		}

		if !headersBuff.Append(data[:colon]) {
			return transport.Error, nil, status.ErrHeaderFieldsTooLarge
		}

		p.headerKey = uf.B2S(headersBuff.Finish())
		data = data[colon+1:]

		if p.headersNumber++; p.headersNumber > p.maxHeaders {
			return transport.Error, nil, status.ErrTooManyHeaders
		}

		if strcomp.EqualFold(p.headerKey, "content-length") {
			if request.HasContentLength {
				return transport.Error, nil, status.ErrBadContentLength
			}

			p.state = eContentLength
			goto contentLength
		}

		p.state = eHeaderValue
		goto headerValue
	}

contentLength:
	for i, char := range data {
		// spaces are tolerated before the number only; anything past the
		// digits must be the line terminator
		if char == ' ' && !p.seenDigit {
			continue
		}

		if char < '0' || char > '9' {
			data = data[i:]
			goto contentLengthEnd
		}

		p.seenDigit = true
		p.contentLength = p.contentLength*10 + int(char-'0')
		if p.contentLength > p.maxBodySize {
			return transport.Error, nil, status.ErrBodyTooLarge
		}
	}

	return transport.Pending, nil, nil

contentLengthEnd:
	// guaranteed, that data at this point contains AT LEAST 1 byte, as this
	// code is reachable only if the loop above met a non-digit character
	if !p.seenDigit {
		return transport.Error, nil, status.ErrBadContentLength
	}

	request.ContentLength = p.contentLength
	request.HasContentLength = true

	switch data[0] {
	case '\r':
		data = data[1:]
		p.state = eContentLengthCR
		goto contentLengthCR
	case '\n':
		data = data[1:]
		p.state = eHeaderKey
		goto headerKey
	default:
		return transport.Error, nil, status.ErrBadContentLength
	}

contentLengthCR:
	if len(data) == 0 {
		return transport.Pending, nil, nil
	}

	if data[0] != '\n' {
		return transport.Error, nil, status.ErrBadContentLength
	}

	data = data[1:]
	p.state = eHeaderKey
	goto headerKey

headerValue:
	{
		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			if !headersBuff.Append(data) {
				return transport.Error, nil, status.ErrHeaderFieldsTooLarge
			}

			return transport.Pending, nil, nil
		}

		if !headersBuff.Append(data[:lf]) {
			return transport.Error, nil, status.ErrHeaderFieldsTooLarge
		}

		data = data[lf+1:]
		value := trimPrefixSpaces(headersBuff.Finish())
		if len(value) > 0 && value[len(value)-1] == '\r' {
			value = value[:len(value)-1]
		}

		request.Headers.Add(p.headerKey, uf.B2S(value))

		p.state = eHeaderKey
		goto headerKey
	}

headerValueCRLFCR:
	if len(data) == 0 {
		return transport.Pending, nil, nil
	}

	if data[0] == '\n' {
		p.reset()

		return transport.HeadersCompleted, data[1:], nil
	}

	return transport.Error, nil, status.ErrBadRequest
}

func (p *Parser) reset() {
	p.headersNumber = 0
	p.contentLength = 0
	p.seenDigit = false
	p.requestLineBuff.Clear()
	p.headersBuff.Clear()
	p.state = eMethod
}

func trimPrefixSpaces(b []byte) []byte {
	for i, char := range b {
		if char != ' ' {
			return b[i:]
		}
	}

	return b[:0]
}
