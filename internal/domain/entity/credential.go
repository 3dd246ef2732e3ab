package entity

import (
	"errors"
	"fmt"
	"strings"
)

// CredentialLength is the exact length the rate provider requires for an API key.
const CredentialLength = 32

var (
	// ErrEmptyCredential indicates the credential was empty after trimming
	ErrEmptyCredential = errors.New("credential is empty")
	// ErrInvalidCredentialLength indicates the credential has the wrong length
	ErrInvalidCredentialLength = errors.New("credential must be exactly 32 characters")
)

// Credential is an opaque API access token for the remote rate provider.
type Credential string

// Validate ensures the credential meets the provider's requirements.
func (c Credential) Validate() error {
	if len(c) == 0 {
		return ErrEmptyCredential
	}

	if len(c) != CredentialLength {
		return fmt.Errorf("%w, got %d", ErrInvalidCredentialLength, len(c))
	}

	return nil
}

// Redacted returns a form of the credential that is safe to log.
func (c Credential) Redacted() string {
	if len(c) <= 4 {
		return "****"
	}

	return string(c[:4]) + strings.Repeat("*", len(c)-4)
}
