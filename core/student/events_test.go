package student

import (
	"strings"
	"testing"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "long local", email: "johndoe@example.com", want: "jo***@example.com"},
		{name: "two chars", email: "jo@example.com", want: "jo***@example.com"},
		{name: "one char", email: "j@example.com", want: "j***@example.com"},
		{name: "subaddress", email: "john.doe+tag@mail.example.com", want: "jo***@mail.example.com"},
		{name: "no at", email: "not-an-email", want: "***"},
		{name: "empty", email: "", want: "***"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskEmail(tt.email); got != tt.want {
				t.Errorf("maskEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

func TestHostOnly(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "https with path", url: "https://api.drivofy.com/v1/onboard?x=1", want: "api.drivofy.com"},
		{name: "with port", url: "http://127.0.0.1:8443/onboard", want: "127.0.0.1:8443"},
		{name: "no scheme", url: "not a url", want: "unknown"},
		{name: "empty", url: "", want: "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hostOnly(tt.url); got != tt.want {
				t.Errorf("hostOnly(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 2*maxErrTextLen)
	if got := truncate(long, maxErrTextLen); len(got) != maxErrTextLen {
		t.Errorf("truncate() len = %d, want %d", len(got), maxErrTextLen)
	}
	if got := truncate("short", maxErrTextLen); got != "short" {
		t.Errorf("truncate() = %q, want unchanged", got)
	}
}

func TestEmitter_observerPanic(t *testing.T) {
	logger := &testLogger{}
	em := emitter{
		requestID: "req-1",
		logger:    logger,
		observer:  func(Event) { panic("lol") },
	}
	em.attemptRetry(1) // must not panic through

	logger.mu.Lock()
	defer logger.mu.Unlock()
	var warned bool
	for _, entry := range logger.entries {
		if strings.Contains(entry, "observer panicked") {
			warned = true
		}
	}
	if !warned {
		t.Error("observer panic was not logged")
	}
}

func TestEmitter_nilObserver(t *testing.T) {
	em := emitter{requestID: "req-1", logger: &testLogger{}}
	em.attemptStarted(1, "https://api.drivofy.com/onboard") // must not panic
}
