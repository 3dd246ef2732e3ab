// Package credential internal/infrastructure/credential/loader.go
package credential

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mfinch/crossrate/internal/domain/entity"
)

// ErrMissingCredential indicates the API key file does not exist
var ErrMissingCredential = errors.New("credential file not found")

// Load reads and validates the API credential from path. Validation happens
// before any network call is attempted, so a malformed key never reaches the
// remote provider.
func Load(path string) (entity.Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: expected API key at %s", ErrMissingCredential, path)
		}
		return "", fmt.Errorf("failed to read credential file %s: %w", path, err)
	}

	cred := entity.Credential(strings.TrimSpace(string(data)))
	if err := cred.Validate(); err != nil {
		return "", fmt.Errorf("invalid credential in %s: %w", path, err)
	}

	return cred, nil
}
