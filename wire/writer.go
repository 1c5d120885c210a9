package wire

import (
	"bufio"
	"fmt"
	"io"
	"net/http"

	testbackend "code.cloudfoundry.org/test-backend"
	"github.com/pkg/errors"
)

const responseProto = "HTTP/1.0"

func WriteResponse(w io.Writer, resp testbackend.Response) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s %d %s\r\n", responseProto, resp.StatusCode, http.StatusText(resp.StatusCode)); err != nil {
		return errors.Wrap(err, "failed to write status line")
	}

	for _, h := range resp.Headers {
		if _, err := fmt.Fprintf(bw, "%s: %s\r\n", h.Name, h.Value); err != nil {
			return errors.Wrapf(err, "failed to write header %q", h.Name)
		}
	}

	if _, err := bw.WriteString("\r\n"); err != nil {
		return errors.Wrap(err, "failed to write header terminator")
	}

	if _, err := bw.WriteString(resp.Body); err != nil {
		return errors.Wrap(err, "failed to write body")
	}

	return errors.Wrap(bw.Flush(), "failed to flush response")
}
