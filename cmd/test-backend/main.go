package main

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	cmdcommons "code.cloudfoundry.org/test-backend/cmd"
	"code.cloudfoundry.org/test-backend/handler"
	"code.cloudfoundry.org/test-backend/prometheus"
	"code.cloudfoundry.org/test-backend/server"
	"code.cloudfoundry.org/test-backend/util"
	"github.com/jessevdk/go-flags"
	api "github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/sigmon"
)

type options struct {
	Args struct {
		Port string `positional-arg-name:"port" description:"Port to listen on (default 3000)"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	_, err := flags.ParseArgs(&opts, os.Args[1:])
	if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
		os.Exit(0)
	}
	cmdcommons.ExitfIfError(err, "Failed to parse args")

	port, err := util.ParsePort(opts.Args.Port)
	cmdcommons.ExitfIfError(err, "Failed to parse port")

	logger := lager.NewLogger("test-backend")
	logger.RegisterSink(lager.NewPrettySink(os.Stdout, lager.DEBUG))

	registry := api.NewRegistry()
	recorder, err := prometheus.NewRecorder(logger, registry)
	cmdcommons.ExitIfError(err)

	clk := clock.NewClock()
	echo := handler.NewEcho(port, clk, recorder, logger.Session("handler"))
	srv := server.New(port, echo, recorder, clk, logger.Session("server"))

	process := ifrit.Background(sigmon.New(srv))

	select {
	case <-process.Ready():
		fmt.Printf("Test backend server running on port %d\n", port)
		fmt.Printf("Visit http://localhost:%d to test\n", port)
	case err = <-process.Wait():
		cmdcommons.ExitfIfError(err, "Failed to start server")
	}

	err = <-process.Wait()
	logTotals(logger, registry)
	cmdcommons.ExitfIfError(err, "Server exited with error")
}

func logTotals(logger lager.Logger, registry api.Gatherer) {
	totals, err := prometheus.Totals(registry)
	if err != nil {
		logger.Error("failed-to-gather-totals", err)

		return
	}

	logger.Info("served", lager.Data{
		"requests-echoed":     totals[prometheus.RequestsEchoed],
		"connection-failures": totals[prometheus.ConnectionFailures],
	})
}
