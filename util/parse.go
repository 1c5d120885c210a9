package util

import (
	"fmt"
	"strconv"

	testbackend "code.cloudfoundry.org/test-backend"
	"golang.org/x/xerrors"
)

const maxPort = 65535

// ParsePort turns the optional port argument into a port number. An empty
// argument selects testbackend.DefaultPort.
func ParsePort(arg string) (int, error) {
	if arg == "" {
		return testbackend.DefaultPort, nil
	}

	port, err := strconv.Atoi(arg)
	if err != nil {
		return 0, xerrors.Errorf("port %q is not a number: %v", arg, err)
	}

	if port < 1 || port > maxPort {
		return 0, fmt.Errorf("port %d is out of range 1-%d", port, maxPort)
	}

	return port, nil
}
