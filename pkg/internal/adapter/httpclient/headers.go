package httpclient

import (
	"fmt"
	"net/http"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
	"golang.org/x/net/http/httpguts"
)

// checkHeader rejects names that are not HTTP tokens and values carrying
// control characters, so a token or channel read from config cannot split
// the request.
func (hp *HTTPClientAdapter) checkHeader(key, value string) error {
	var err error
	switch {
	case !httpguts.ValidHeaderFieldName(key):
		err = fmt.Errorf("invalid header name %q", key)
	case !httpguts.ValidHeaderFieldValue(value):
		err = fmt.Errorf("header %s contains unsupported characters", http.CanonicalHeaderKey(key))
	default:
		return nil
	}
	hp.notifyHTTPClientError(err)
	hp.NotifyLoggers(types.WarnLevel, "httpclient header dropped", "component", hp.GetComponentMetadata(), "error", err)
	return err
}

// applyHeaders sets the static headers, then the JSON content type, then the
// per-request headers. Only a per-request header can change Content-Type.
func (hp *HTTPClientAdapter) applyHeaders(req *http.Request, extra map[string]string) {
	for key, value := range hp.snapshotHeaders() {
		req.Header.Set(key, value)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Del("Cache-Control")
	for key, value := range extra {
		if hp.checkHeader(key, value) != nil {
			continue
		}
		req.Header.Set(key, value)
	}
}
