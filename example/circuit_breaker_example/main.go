package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/builder"
)

func main() {
	// The collector fails its first five requests.
	var requests atomic.Int32
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) <= 5 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	sensor := builder.NewSensor(
		builder.SensorWithCircuitBreakerTripFunc(func(c builder.ComponentMetadata, at int64, failures int) {
			fmt.Printf("%s tripped after %d failures\n", c.Name, failures)
		}),
		builder.SensorWithCircuitBreakerResetFunc(func(c builder.ComponentMetadata, at int64) {
			fmt.Printf("%s reset\n", c.Name)
		}),
		builder.SensorWithOnSuppressedFunc(func(c builder.ComponentMetadata, reason string) {
			fmt.Printf("send suppressed: %s\n", reason)
		}),
	)

	store, err := builder.NewSettings(
		builder.SettingsWithEndpoint(collector.URL),
		builder.SettingsWithToken("example-token"),
		builder.SettingsWithErrorThreshold(3),
		builder.SettingsWithLogToConsole(false),
	)
	if err != nil {
		fmt.Printf("Error creating settings: %v\n", err)
		return
	}

	pipeline := builder.NewPipeline(context.Background(), store, builder.PipelineWithSensor(sensor))
	pipeline.Transport.SetComponentMetadata("hec", "example")

	for i := 1; i <= 6; i++ {
		pipeline.Dispatcher.Info(fmt.Sprintf("event %d", i))
		pipeline.Wait()
	}

	breaker := pipeline.Transport.CircuitBreaker()
	waitForReset := func(why string) {
		select {
		case <-breaker.NotifyOnReset():
			fmt.Printf("breaker closed: %s\n", why)
		case <-time.After(time.Second):
			fmt.Printf("breaker still open after %s\n", why)
		}
	}

	// Changing the threshold starts a fresh count, so sending resumes. The
	// transport picks the new threshold up on its next send.
	store.SetErrorThreshold(10)
	for i := 7; i <= 9; i++ {
		pipeline.Dispatcher.Info(fmt.Sprintf("event %d", i))
		pipeline.Wait()
	}
	waitForReset("threshold raised")

	// Hold events back while the collector is under maintenance.
	breaker.Trip()
	pipeline.Dispatcher.Info("during maintenance")
	pipeline.Wait()
	breaker.Reset()
	waitForReset("maintenance over")
	pipeline.Dispatcher.Info("after maintenance")
	pipeline.Wait()

	stats := sensor.Stats()
	fmt.Printf("requests=%d sent=%d failed=%d succeeded=%d suppressed=%d\n",
		requests.Load(), stats.Sent, stats.Failed, stats.Succeeded, stats.Suppressed)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = pipeline.Close(ctx)
}
