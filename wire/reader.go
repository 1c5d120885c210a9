// Package wire reads HTTP/1.x request heads and writes responses directly on a
// connection. Header order and name case are preserved as received.
package wire

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	testbackend "code.cloudfoundry.org/test-backend"
	"github.com/pkg/errors"
)

var (
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrUnsupportedVersion   = errors.New("unsupported protocol version")
	ErrMalformedHeader      = errors.New("malformed header line")
	ErrLineTooLong          = errors.New("line too long")
	ErrTooManyHeaders       = errors.New("too many headers")
)

// ReadRequest reads a request line and the header block that follows it. The
// body, if any, is left unread. io.EOF is returned as is when the client closed
// the connection before sending anything.
func ReadRequest(r *bufio.Reader) (testbackend.Request, error) {
	line, err := readLine(r)
	if err != nil {
		if err == io.EOF {
			return testbackend.Request{}, io.EOF
		}

		return testbackend.Request{}, errors.Wrap(err, "failed to read request line")
	}

	req, err := parseRequestLine(line)
	if err != nil {
		return testbackend.Request{}, err
	}

	req.Headers, err = readHeaders(r)
	if err != nil {
		return testbackend.Request{}, err
	}

	return req, nil
}

func parseRequestLine(line string) (testbackend.Request, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return testbackend.Request{}, errors.Wrapf(ErrMalformedRequestLine, "%q", line)
	}

	if !isHTTP1(fields[2]) {
		return testbackend.Request{}, errors.Wrapf(ErrUnsupportedVersion, "%q", fields[2])
	}

	return testbackend.Request{
		Method: fields[0],
		Target: fields[1],
		Proto:  fields[2],
	}, nil
}

func isHTTP1(proto string) bool {
	if !strings.HasPrefix(proto, "HTTP/") {
		return false
	}

	parts := strings.Split(strings.TrimPrefix(proto, "HTTP/"), ".")
	if len(parts) != 2 {
		return false
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}

	if _, err := strconv.Atoi(parts[1]); err != nil {
		return false
	}

	return major == 1
}

func readHeaders(r *bufio.Reader) ([]testbackend.Header, error) {
	headers := []testbackend.Header{}

	for {
		line, err := readLine(r)
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}

			return nil, errors.Wrap(err, "failed to read headers")
		}

		if line == "" {
			return headers, nil
		}

		if line[0] == ' ' || line[0] == '\t' {
			if len(headers) == 0 {
				return nil, errors.Wrapf(ErrMalformedHeader, "continuation before first header: %q", line)
			}

			last := &headers[len(headers)-1]
			last.Value += " " + strings.TrimLeft(line, " \t")

			continue
		}

		header, err := parseHeader(line)
		if err != nil {
			return nil, err
		}

		if len(headers) == testbackend.MaxHeaders {
			return nil, errors.Wrapf(ErrTooManyHeaders, "more than %d", testbackend.MaxHeaders)
		}

		headers = append(headers, header)
	}
}

func parseHeader(line string) (testbackend.Header, error) {
	i := strings.IndexByte(line, ':')
	if i <= 0 {
		return testbackend.Header{}, errors.Wrapf(ErrMalformedHeader, "%q", line)
	}

	name := line[:i]
	if strings.ContainsAny(name, " \t") {
		return testbackend.Header{}, errors.Wrapf(ErrMalformedHeader, "%q", line)
	}

	return testbackend.Header{
		Name:  name,
		Value: strings.TrimLeft(line[i+1:], " \t"),
	}, nil
}

// similar to readLineSlice() in net/textproto/reader.go, with a length cap
func readLine(r *bufio.Reader) (string, error) {
	var line []byte

	for {
		l, more, err := r.ReadLine()
		if err != nil {
			return "", err
		}

		if len(line)+len(l) > testbackend.MaxLineLength {
			return "", ErrLineTooLong
		}

		if line == nil && !more {
			return string(l), nil
		}

		line = append(line, l...)
		if !more {
			return string(line), nil
		}
	}
}
