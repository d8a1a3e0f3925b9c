package student

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Bam123-spec/drivofy-v2-sub001/core"
)

// maxAttempts bounds the retry loop. Attempts are strictly sequential.
const maxAttempts = 2

type (
	// invocationConfig is the endpoint/secret pair resolved once per call.
	// It never appears in diagnostics beyond presence booleans and the host.
	invocationConfig struct {
		endpointURL string
		adminKey    string
	}

	// ServiceInterface lets collaborators (admin API, CLI) depend on the
	// invite entry point alone.
	ServiceInterface interface {
		Invite(inv InviteStudent, opts ...Options) Result
	}

	// Service onboards students against the remote onboarding service.
	// It holds no mutable state and is safe for concurrent use.
	Service struct {
		conf   *core.Config
		logger core.Logger
		client *http.Client
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(conf *core.Config, logger core.Logger) *Service {
	return &Service{
		conf:   conf,
		logger: logger,
		client: newHTTPClient(),
	}
}

// Invite creates a student account through the onboarding service. It is one
// complete call: validation, endpoint resolution, up to maxAttempts bounded
// transport attempts, classification and diagnostics all happen here, and
// every expected failure mode comes back as a Result rather than an error.
// Callers must not retry on top of it.
//
// Each attempt carries its own timeout; a call already in progress cannot be
// cancelled from the outside.
func (svc *Service) Invite(inv InviteStudent, opts ...Options) Result {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	reqID := opt.RequestID
	if reqID == "" {
		reqID = uuid.New().String()
	}
	em := emitter{requestID: reqID, logger: svc.logger, observer: opt.OnEvent}

	// Validating
	if err := inv.Validate(); err != nil {
		em.validationFailed(err)
		return Result{Message: validationMessage(err), RequestID: reqID, StatusCode: http.StatusBadRequest}
	}
	em.inviteStarted(inv.Email)

	// ConfiguringEndpoint
	cfg, ok := svc.resolveConfig(opt)
	if !ok {
		em.configMissing(cfg.endpointURL != "", cfg.adminKey != "")
		return Result{Message: msgNotConfigured, RequestID: reqID, StatusCode: http.StatusInternalServerError}
	}

	payload, err := json.Marshal(inv.payload())
	if err != nil { // programming error; the payload shape always encodes
		svc.logger.Error("onboarding: encode invite payload", err)
		return Result{Message: msgGenericFailure, RequestID: reqID, StatusCode: http.StatusInternalServerError}
	}

	// Attempting(n)
	var lastStatus int
	var lastChallenge bool
	for n := 1; n <= maxAttempts; n++ {
		em.attemptStarted(n, cfg.endpointURL)
		out := svc.post(cfg.endpointURL, cfg.adminKey, payload)

		if out.transportFailed() {
			if out.timedOut {
				em.attemptTimeout(n)
			} else {
				em.attemptNetworkError(n, out.err)
			}
			if n < maxAttempts {
				em.attemptRetry(n)
				continue
			}
			status := lastStatus
			if status == 0 {
				status = http.StatusServiceUnavailable
			}
			em.inviteFailed(status, lastChallenge)
			return Result{Message: friendlyMessage(status, lastChallenge), RequestID: reqID, StatusCode: status}
		}

		cls := classify(out.status, out.body)
		em.responseReceived(n, out.status)
		if cls.challenge {
			em.challengeDetected(n, out.status)
		}
		lastStatus, lastChallenge = out.status, cls.challenge

		if cls.success {
			em.inviteSucceeded(out.status, cls.userID)
			return Result{
				Success:    true,
				Message:    msgCreated,
				UserID:     cls.userID,
				RequestID:  reqID,
				StatusCode: out.status,
			}
		}
		if cls.retryable && n < maxAttempts {
			em.attemptRetry(n)
			continue
		}
		em.inviteFailed(out.status, cls.challenge)
		return Result{Message: friendlyMessage(out.status, cls.challenge), RequestID: reqID, StatusCode: out.status}
	}

	// unreachable: every loop branch returns or continues
	em.inviteFailed(lastStatus, lastChallenge)
	return Result{Message: msgGenericFailure, RequestID: reqID, StatusCode: lastStatus}
}

// resolveConfig resolves the endpoint and shared secret for this call:
// explicit options win, then the process configuration.
func (svc *Service) resolveConfig(opt Options) (invocationConfig, bool) {
	cfg := invocationConfig{endpointURL: opt.EndpointURL, adminKey: opt.AdminKey}
	if cfg.endpointURL == "" {
		cfg.endpointURL = svc.conf.Onboarding.URL
	}
	if cfg.adminKey == "" {
		cfg.adminKey = svc.conf.Onboarding.AdminKey
	}
	return cfg, cfg.endpointURL != "" && cfg.adminKey != ""
}
