package student

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Bam123-spec/drivofy-v2-sub001/core"
)

// Kind identifies a diagnostic event. The set is closed: payloads are built
// by the emitter helpers below, never by callers.
type Kind string

const (
	EventInviteStarted       Kind = "invite_started"
	EventValidationFailed    Kind = "validation_failed"
	EventConfigMissing       Kind = "config_missing"
	EventAttemptStarted      Kind = "attempt_started"
	EventResponseReceived    Kind = "response_received"
	EventChallengeDetected   Kind = "challenge_detected"
	EventAttemptTimeout      Kind = "attempt_timeout"
	EventAttemptNetworkError Kind = "attempt_network_error"
	EventAttemptRetry        Kind = "attempt_retry"
	EventInviteSucceeded     Kind = "invite_succeeded"
	EventInviteFailed        Kind = "invite_failed"
)

// Event is one redacted diagnostic record. Events for a request id are
// emitted in state-machine order, all before Invite returns, and are never
// persisted by this module.
type Event struct {
	RequestID string                 `json:"requestId"`
	Kind      Kind                   `json:"event"`
	Attempt   int                    `json:"attempt,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// maxErrTextLen caps captured error/body text before it reaches any sink.
const maxErrTextLen = 500

// emitter fans every event out to the structured log and to the optional
// caller-supplied observer. Redaction happens here, at construction: the
// admin key never enters an Event, emails are masked and URLs reduced to
// their host.
type emitter struct {
	requestID string
	logger    core.Logger
	observer  func(Event)
}

func (em emitter) emit(kind Kind, attempt int, fields map[string]interface{}) {
	evt := Event{RequestID: em.requestID, Kind: kind, Attempt: attempt, Fields: fields}
	em.logger.Info(fmt.Sprintf("onboarding: %s", kind), evt)
	if em.observer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			em.logger.Warn("onboarding: event observer panicked", r)
		}
	}()
	em.observer(evt)
}

func (em emitter) inviteStarted(email string) {
	em.emit(EventInviteStarted, 0, map[string]interface{}{
		"email":  maskEmail(email),
		"source": sourceAdminPortal,
	})
}

// validationFailed reports the offending field names only; values never
// reach the sinks.
func (em emitter) validationFailed(err error) {
	fields := make(map[string]interface{}, 1)
	if vErr, ok := err.(*core.ValidationError); ok {
		names := make([]string, 0, len(vErr.Fields))
		for _, fld := range vErr.Fields {
			names = append(names, fld.Field)
		}
		fields["fields"] = strings.Join(names, ",")
	} else {
		fields["error"] = truncate(err.Error(), maxErrTextLen)
	}
	em.emit(EventValidationFailed, 0, fields)
}

func (em emitter) configMissing(hasEndpoint, hasAdminKey bool) {
	em.emit(EventConfigMissing, 0, map[string]interface{}{
		"hasEndpoint": hasEndpoint,
		"hasAdminKey": hasAdminKey,
	})
}

func (em emitter) attemptStarted(n int, endpointURL string) {
	em.emit(EventAttemptStarted, n, map[string]interface{}{
		"host": hostOnly(endpointURL),
	})
}

func (em emitter) responseReceived(n, status int) {
	em.emit(EventResponseReceived, n, map[string]interface{}{
		"statusCode": status,
	})
}

func (em emitter) challengeDetected(n, status int) {
	em.emit(EventChallengeDetected, n, map[string]interface{}{
		"statusCode": status,
	})
}

func (em emitter) attemptTimeout(n int) {
	em.emit(EventAttemptTimeout, n, nil)
}

func (em emitter) attemptNetworkError(n int, err error) {
	em.emit(EventAttemptNetworkError, n, map[string]interface{}{
		"error": truncate(err.Error(), maxErrTextLen),
	})
}

func (em emitter) attemptRetry(n int) {
	em.emit(EventAttemptRetry, n, nil)
}

func (em emitter) inviteSucceeded(status int, userID string) {
	em.emit(EventInviteSucceeded, 0, map[string]interface{}{
		"statusCode": status,
		"hasUserId":  userID != "",
	})
}

func (em emitter) inviteFailed(status int, challenge bool) {
	em.emit(EventInviteFailed, 0, map[string]interface{}{
		"statusCode": status,
		"challenge":  challenge,
	})
}

// Redaction helpers

// maskEmail keeps at most the first two characters of the local part.
func maskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "***"
	}
	local, domain := email[:at], email[at+1:]
	if len(local) > 2 {
		local = local[:2]
	}
	return local + "***@" + domain
}

// hostOnly strips an endpoint URL down to its host component.
func hostOnly(endpointURL string) string {
	u, err := url.Parse(endpointURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
