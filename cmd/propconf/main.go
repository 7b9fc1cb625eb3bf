package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-prop-config/internal/cli"
	"github.com/MKhiriev/go-prop-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Args[1:])

	stop()
	os.Exit(code)
}
