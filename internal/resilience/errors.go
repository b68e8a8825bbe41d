// Package resilience retries operations that fail for transient reasons,
// such as a database that is still starting up.
package resilience

import (
	"errors"
	"net"
	"strings"
	"syscall"
)

var transientPatterns = []string{
	"connection refused",
	"connection reset by peer",
	"broken pipe",
	"i/o timeout",
	"no such host",
	"temporary failure in name resolution",
	"the database system is starting up",
	"too many clients",
}

// IsTransient reports whether err looks like a connection-level failure
// that may succeed on a later attempt.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
