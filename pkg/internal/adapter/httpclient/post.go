package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"github.com/jpillora/backoff"
)

// Post sends body to url. Content-Type is application/json unless headers sets it, and
// a static Cache-Control is never sent. A nil error means a 2xx
// response. Failures are *types.HTTPError with StatusCode zero when no response arrived.
func (hp *HTTPClientAdapter) Post(ctx context.Context, url string, body []byte, headers map[string]string) (int, error) {
	hp.configLock.Lock()
	retries := hp.maxRetries
	b := &backoff.Backoff{Min: hp.retryMin, Max: hp.retryMax, Factor: 2, Jitter: true}
	hp.configLock.Unlock()

	defer hp.notifyHTTPClientRequestComplete()

	for attempt := 0; ; attempt++ {
		status, err := hp.postOnce(ctx, url, body, headers)
		if err == nil {
			return status, nil
		}
		if !retryable(status) || attempt >= retries {
			return status, err
		}

		wait := b.Duration()
		hp.NotifyLoggers(types.DebugLevel, "httpclient retrying post",
			"component", hp.GetComponentMetadata(),
			"attempt", attempt+1,
			"status", status,
			"wait", wait,
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return status, err
		case <-timer.C:
		}
	}
}

func (hp *HTTPClientAdapter) postOnce(ctx context.Context, url string, body []byte, headers map[string]string) (int, error) {
	hp.notifyHTTPClientRequestStart()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		hp.notifyHTTPClientError(err)
		return 0, &types.HTTPError{StatusCode: 0, Err: err, Message: "failed to create HTTP request"}
	}

	hp.applyHeaders(req, headers)

	resp, err := hp.client().Do(req)
	if err != nil {
		hp.notifyHTTPClientError(err)
		hp.NotifyLoggers(types.WarnLevel, "httpclient post failed",
			"component", hp.GetComponentMetadata(),
			"url", url,
			"error", err,
		)
		return 0, &types.HTTPError{StatusCode: 0, Err: err, Message: "HTTP request execution failed"}
	}
	defer resp.Body.Close()

	hp.notifyHTTPClientResponseReceived(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		err = fmt.Errorf("HTTP request failed with status code: %d", resp.StatusCode)
		hp.notifyHTTPClientError(err)
		hp.NotifyLoggers(types.WarnLevel, "httpclient non-success status",
			"component", hp.GetComponentMetadata(),
			"url", url,
			"status", resp.StatusCode,
		)
		return resp.StatusCode, &types.HTTPError{
			StatusCode: resp.StatusCode,
			Err:        err,
			Message:    strings.TrimSpace(string(detail)),
		}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func retryable(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests
}
