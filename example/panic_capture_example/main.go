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
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fmt.Printf("collector <- %s\n", body)
	}))
	defer collector.Close()

	store, err := builder.NewSettings(
		builder.SettingsWithEndpoint(collector.URL),
		builder.SettingsWithToken("example-token"),
		builder.SettingsWithSendConsoleErrors(true),
		builder.SettingsWithLogToConsole(false),
	)
	if err != nil {
		fmt.Printf("Error creating settings: %v\n", err)
		return
	}

	// An observer registered before the pipeline keeps running after it.
	registry := builder.NewErrorRegistry(builder.ErrorRegistryWithObserver(func(e builder.UncaughtError) {
		fmt.Printf("local handler saw: %s at %s:%d\n", e.Message, e.URL, e.Line)
	}))
	pipeline := builder.NewPipeline(context.Background(), store, builder.PipelineWithErrorRegistry(registry))

	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("recovered: %v\n", r)
			}
		}()
		defer registry.CapturePanic()

		var orders map[string]int
		orders["pending"]++
	}()

	registry.Report(builder.UncaughtError{Message: "worker stalled", URL: "jobs/worker.go", Line: 88})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = pipeline.Close(ctx)
}
