package student

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Human-facing copy. The admin UI shows these verbatim.
const (
	msgCreated        = "Student created. Magic link email sent."
	msgChallenge      = "Onboarding API is blocked by Cloudflare challenge. Disable JS challenge for this endpoint."
	msgBadInput       = "Invalid student input. Check email and full name."
	msgAuthMisconfig  = "Onboarding authentication is misconfigured. Please contact support."
	msgAlreadyExists  = "Student already exists. Ask them to log in or reset password."
	msgUnavailable    = "Onboarding service is temporarily unavailable. Please retry."
	msgGenericFailure = "Unable to create student right now. Please retry."
	msgNotConfigured  = "Onboarding service is not configured. Please contact support."
	msgInvalidEmail   = "Please enter a valid email address."
	msgNameRequired   = "Full name is required."
)

// classification is the typed outcome of one raw response.
type classification struct {
	success   bool
	retryable bool
	challenge bool
	userID    string
}

// challengeMarkers betray an edge interstitial standing in for the API payload.
var challengeMarkers = []string{
	"cf-chl",
	"challenge-platform",
	"cloudflare",
	"just a moment",
	"attention required",
}

// classify turns a status code and the raw response text into a typed
// outcome. The challenge flag only ever changes the user-facing message; the
// retry decision follows the status code alone, so a challenge page served
// with a 5xx still burns the remaining attempts against the same static page.
// Known inefficiency, kept to match the deployed behavior.
func classify(status int, body string) classification {
	cls := classification{challenge: detectChallenge(body)}
	switch {
	case status >= 200 && status < 300:
		cls.success = true
		cls.userID = extractUserID(body)
	case status >= 500:
		cls.retryable = true
	}
	return cls
}

func detectChallenge(body string) bool {
	lowered := strings.ToLower(body)
	for _, marker := range challengeMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// extractUserID digs the created account id out of a success body, trying
// userId, then user.id, then id. A body that is not JSON, or carries no id,
// is fine: success is decided by the status code alone.
func extractUserID(body string) string {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return ""
	}
	if id := asID(data["userId"]); id != "" {
		return id
	}
	if usr, ok := data["user"].(map[string]interface{}); ok {
		if id := asID(usr["id"]); id != "" {
			return id
		}
	}
	return asID(data["id"])
}

func asID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// friendlyMessage maps a final (status, challenge) pair to operator-facing
// copy. Pure and deterministic; challenge detection wins over the status
// mapping.
func friendlyMessage(status int, challenge bool) string {
	switch {
	case challenge:
		return msgChallenge
	case status == 400:
		return msgBadInput
	case status == 401 || status == 403:
		return msgAuthMisconfig
	case status == 409:
		return msgAlreadyExists
	case status >= 500:
		return msgUnavailable
	default:
		return msgGenericFailure
	}
}
