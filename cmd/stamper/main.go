package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-config-stamper/internal/environ"
	"github.com/MKhiriev/go-config-stamper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	cmd := newRootCmd(environ.FromOS(), info)

	code := execute(ctx, cmd)
	stop()
	os.Exit(code)
}
