package otel

import (
	"os"

	"github.com/adrianliechti/oai/pkg/exchange"
)

const instrumentationName = "github.com/adrianliechti/oai"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}

type Doer interface {
	Observable
	exchange.Doer
}
