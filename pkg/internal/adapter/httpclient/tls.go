package httpclient

import (
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/joeydtaylor/splunklogger/pkg/internal/types"
)

type certPin [sha256.Size]byte

// SetTlsPinnedCertificate requires the collector's verified chain to contain one of
// the PEM certificates in the file at certPath. A bundle may pin several
// certificates, for example the current and the next collector certificate.
func (hp *HTTPClientAdapter) SetTlsPinnedCertificate(certPath string) {
	pins, err := loadPins(certPath)
	if err != nil {
		hp.notifyHTTPClientError(err)
		hp.NotifyLoggers(types.ErrorLevel, "httpclient tls pinning failed",
			"component", hp.GetComponentMetadata(),
			"cert_path", certPath,
			"error", err,
		)
		return
	}

	tlsConfig := &tls.Config{
		MinVersion:            tls.VersionTLS12,
		VerifyPeerCertificate: hp.verifyServerCertificate,
	}

	hp.configLock.Lock()
	hp.pins = pins
	if hp.httpClient != nil {
		c := *hp.httpClient
		c.Transport = &http.Transport{TLSClientConfig: tlsConfig, Proxy: http.ProxyFromEnvironment}
		hp.httpClient = &c
	}
	hp.configLock.Unlock()

	hp.NotifyLoggers(types.InfoLevel, "httpclient tls pinning enabled",
		"component", hp.GetComponentMetadata(),
		"cert_path", certPath,
		"pins", len(pins),
	)
}

func (hp *HTTPClientAdapter) verifyServerCertificate(_ [][]byte, verifiedChains [][]*x509.Certificate) error {
	hp.configLock.Lock()
	pins := hp.pins
	hp.configLock.Unlock()

	if len(pins) == 0 {
		return nil
	}
	for _, chain := range verifiedChains {
		for _, cert := range chain {
			if _, ok := pins[sha256.Sum256(cert.Raw)]; ok {
				return nil
			}
		}
	}
	return errors.New("collector certificate does not match any pinned certificate")
}

// loadPins fingerprints every CERTIFICATE block in the file.
func loadPins(certPath string) (map[certPin]struct{}, error) {
	data, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("read pinned certificate: %w", err)
	}

	pins := make(map[certPin]struct{})
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type == "CERTIFICATE" {
			pins[sha256.Sum256(block.Bytes)] = struct{}{}
		}
	}
	if len(pins) == 0 {
		return nil, fmt.Errorf("no PEM certificate found in %s", certPath)
	}
	return pins, nil
}
