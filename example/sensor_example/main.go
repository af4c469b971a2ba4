package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/builder"
)

func main() {
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Encoding") != "gzip" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	sensor := builder.NewSensor(
		builder.SensorWithOnSendFunc(func(c builder.ComponentMetadata, ev builder.Event) {
			fmt.Printf("%v -> sending %v\n", c.Type, ev.Event["message"])
		}),
		builder.SensorWithOnSendSuccessFunc(func(c builder.ComponentMetadata, status int, elapsed time.Duration) {
			fmt.Printf("%v -> delivered with %d in %s\n", c.Type, status, elapsed)
		}),
		builder.SensorWithOnSendErrorFunc(func(c builder.ComponentMetadata, err error) {
			fmt.Printf("%v -> failed: %v\n", c.Type, err)
		}),
		builder.SensorWithOnHTTPClientResponseReceivedFunc(func(c builder.ComponentMetadata, status int) {
			fmt.Printf("%v -> response %d\n", c.Type, status)
		}),
	)

	store, err := builder.NewSettings(
		builder.SettingsWithEndpoint(collector.URL),
		builder.SettingsWithToken("example-token"),
		builder.SettingsWithCompression("gzip"),
		builder.SettingsWithGeneratedRequestChannel(),
		builder.SettingsWithLogToConsole(false),
	)
	if err != nil {
		fmt.Printf("Error creating settings: %v\n", err)
		return
	}

	pipeline := builder.NewPipeline(context.Background(), store, builder.PipelineWithSensor(sensor))
	for i := 0; i < 5; i++ {
		pipeline.Dispatcher.Info(fmt.Sprintf("message %d", i))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pipeline.Close(ctx); err != nil {
		fmt.Printf("Error closing pipeline: %v\n", err)
	}

	fmt.Printf("Stats: %+v\n", sensor.Stats())
}
