package testbackend

const (
	DefaultPort = 3000

	ServerName  = "test-backend"
	ContentType = "text/html"

	// Limits on a request head.
	MaxLineLength = 65536
	MaxHeaders    = 100
)

type Header struct {
	Name  string
	Value string
}

// Request is the head of one HTTP request. Headers are kept in wire order with
// the names exactly as the client sent them.
type Request struct {
	Method  string
	Target  string
	Proto   string
	Headers []Header
}

type Response struct {
	StatusCode int
	Headers    []Header
	Body       string
}
