package credential

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfinch/crossrate/internal/domain/entity"
)

func writeKeyFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "api_key.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	valid := strings.Repeat("k", 32)

	t.Run("Valid key", func(t *testing.T) {
		cred, err := Load(writeKeyFile(t, valid))
		require.NoError(t, err)
		assert.Equal(t, entity.Credential(valid), cred)
	})

	t.Run("Surrounding whitespace is trimmed", func(t *testing.T) {
		cred, err := Load(writeKeyFile(t, "  "+valid+"\n"))
		require.NoError(t, err)
		assert.Equal(t, entity.Credential(valid), cred)
	})

	t.Run("Missing file names the expected location", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "api_key.txt")

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrMissingCredential)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("31 characters rejected", func(t *testing.T) {
		_, err := Load(writeKeyFile(t, strings.Repeat("k", 31)))
		assert.ErrorIs(t, err, entity.ErrInvalidCredentialLength)
	})

	t.Run("33 characters rejected", func(t *testing.T) {
		_, err := Load(writeKeyFile(t, strings.Repeat("k", 33)))
		assert.ErrorIs(t, err, entity.ErrInvalidCredentialLength)
	})

	t.Run("Whitespace-only file rejected", func(t *testing.T) {
		_, err := Load(writeKeyFile(t, " \n\t"))
		assert.ErrorIs(t, err, entity.ErrEmptyCredential)
	})
}
