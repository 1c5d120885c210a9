package handler

import (
	"fmt"
	"strings"

	testbackend "code.cloudfoundry.org/test-backend"
)

const (
	pageHead = `<html>
<head><title>Test Backend Server</title></head>
<body>
    <h1>Backend Server Response</h1>
    <p>This is a test backend server running on port %d</p>
    <p>Request path: %s</p>
    <p>Headers received:</p>
    <ul>
`
	pageHeaderItem = "<li><strong>%s:</strong> %s</li>"
	pageTail       = `
    </ul>
</body>
</html>
`
)

// RenderPage builds the echo document for req. The path and header values are
// written into the HTML as received, without escaping, so the page reflects
// whatever markup a client sends.
func RenderPage(port int, req testbackend.Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, pageHead, port, req.Target)

	for _, h := range req.Headers {
		fmt.Fprintf(&b, pageHeaderItem, h.Name, h.Value)
	}

	b.WriteString(pageTail)

	return b.String()
}
