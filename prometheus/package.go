package prometheus

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	RequestsEchoed         = "test_backend_requests_echoed"
	RequestsEchoedHelp     = "The total number of requests answered with an echo page"
	ConnectionFailures     = "test_backend_connection_failures"
	ConnectionFailuresHelp = "The total number of connections abandoned because of a read or write failure"
)
