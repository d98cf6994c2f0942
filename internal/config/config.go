package config

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/bydcare/landing/internal/domain"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultRecipient receives every inquiry composed through the contact form.
	DefaultRecipient = "sales@bydcare.shop"

	// DefaultServiceName is reported to tracing backends.
	DefaultServiceName = "bydcare-landing"

	// MaxRequestBodyBytes caps form and JSON request bodies.
	MaxRequestBodyBytes = 64 << 10

	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout = 10 * time.Second
)

// ValidateRecipient checks that addr is a bare email address that can be
// embedded in a mailto URI as-is.
func ValidateRecipient(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", fmt.Errorf("%w: empty", domain.ErrInvalidRecipient)
	}

	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", domain.ErrInvalidRecipient, addr, err)
	}
	if parsed.Address != addr {
		return "", fmt.Errorf("%w: %q must be a bare address", domain.ErrInvalidRecipient, addr)
	}
	if strings.ContainsAny(addr, "?&#%/") {
		return "", fmt.Errorf("%w: %q contains URI delimiters", domain.ErrInvalidRecipient, addr)
	}
	if strings.ContainsRune(addr, '"') || strings.ContainsFunc(addr, unicode.IsSpace) {
		return "", fmt.Errorf("%w: %q must not be quoted or contain spaces", domain.ErrInvalidRecipient, addr)
	}

	return addr, nil
}
