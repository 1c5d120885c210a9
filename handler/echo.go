package handler

import (
	"net/http"
	"strconv"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	testbackend "code.cloudfoundry.org/test-backend"
	"code.cloudfoundry.org/test-backend/prometheus"
)

type Echo struct {
	port     int
	clock    clock.Clock
	recorder prometheus.Recorder
	logger   lager.Logger
}

func NewEcho(port int, clock clock.Clock, recorder prometheus.Recorder, logger lager.Logger) *Echo {
	return &Echo{
		port:     port,
		clock:    clock,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle answers every request with the echo page, whatever its method.
func (e *Echo) Handle(req testbackend.Request) testbackend.Response {
	logger := e.logger.Session("echo", lager.Data{"method": req.Method, "path": req.Target})

	body := RenderPage(e.port, req)

	e.recorder.Increment(prometheus.RequestsEchoed)
	logger.Debug("echoed", lager.Data{"header-count": len(req.Headers)})

	return testbackend.Response{
		StatusCode: http.StatusOK,
		Headers: []testbackend.Header{
			{Name: "Server", Value: testbackend.ServerName},
			{Name: "Date", Value: e.clock.Now().UTC().Format(http.TimeFormat)},
			{Name: "Content-type", Value: testbackend.ContentType},
			{Name: "Content-Length", Value: strconv.Itoa(len(body))},
			{Name: "Connection", Value: "close"},
		},
		Body: body,
	}
}
