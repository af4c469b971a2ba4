package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/builder"
)

func main() {
	// Stand-in collector printing every event it receives.
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fmt.Printf("collector <- %s\n", body)
	}))
	defer collector.Close()

	store, err := builder.NewSettings(
		builder.SettingsWithEndpoint(collector.URL),
		builder.SettingsWithToken("00000000-0000-0000-0000-000000000000"),
		builder.SettingsWithSource("example-app"),
		builder.SettingsWithLevel("INFO"),
		builder.SettingsWithFields(map[string]interface{}{"service": "checkout"}),
		builder.SettingsWithLabels(map[string]string{"message": "msg"}),
		builder.SettingsWithIncludeTimestamp(true),
	)
	if err != nil {
		fmt.Printf("Error creating settings: %v\n", err)
		return
	}

	pipeline := builder.NewPipeline(context.Background(), store,
		builder.PipelineWithLogger(builder.NewLogger(builder.LoggerWithLevel("info"))),
	)

	log := pipeline.Dispatcher
	log.Debug("not forwarded, below INFO")
	log.Info("order placed")
	log.Warn(map[string]interface{}{"order": 1042, "retries": 2})

	payments := pipeline.GetLogger("payments")
	payments.Error("card declined", "visa")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pipeline.Close(ctx); err != nil {
		fmt.Printf("Error closing pipeline: %v\n", err)
	}
}
