package student

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"time"
)

// attemptTimeout bounds one full request/response cycle against the
// onboarding service; when it elapses the in-flight request is cancelled.
var attemptTimeout = 10 * time.Second // mockable

const (
	connectTimeout        = 10 * time.Second
	tlsHandshakeTimeout   = 10 * time.Second
	responseHeaderTimeout = 15 * time.Second
	keepAliveDuration     = 30 * time.Second
	idleConnTimeout       = 90 * time.Second
)

// adminKeyHeader carries the shared secret to the onboarding service.
const adminKeyHeader = "x-admin-key"

// attemptOutcome is the tagged result of exactly one transport attempt:
// a response (status + body), a timeout, or a network error. The retry loop
// never has to tell thrown failures from returned ones.
type attemptOutcome struct {
	status   int
	body     string
	timedOut bool
	err      error
}

func (out attemptOutcome) transportFailed() bool { return out.timedOut || out.err != nil }

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   connectTimeout,
				KeepAlive: keepAliveDuration,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			TLSHandshakeTimeout:   tlsHandshakeTimeout,
			ResponseHeaderTimeout: responseHeaderTimeout,
			IdleConnTimeout:       idleConnTimeout,
		},
	}
}

// post performs one bounded POST of the invite payload. The response body is
// read fully, exactly once, whatever the status: the same bytes feed both the
// JSON decode and the challenge-page scan.
func (svc *Service) post(endpointURL, adminKey string, payload []byte) attemptOutcome {
	ctx, cancel := context.WithTimeout(context.Background(), attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewReader(payload))
	if err != nil {
		return attemptOutcome{err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(adminKeyHeader, adminKey)
	req.Header.Set("Cache-Control", "no-store")

	res, err := svc.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return attemptOutcome{timedOut: true, err: err}
		}
		return attemptOutcome{err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return attemptOutcome{timedOut: true, err: err}
		}
		return attemptOutcome{err: err}
	}
	return attemptOutcome{status: res.StatusCode, body: string(body)}
}
