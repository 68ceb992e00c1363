package mongo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTLSConfig_Errors(t *testing.T) {
	_, err := loadTLSConfig(filepath.Join(t.TempDir(), "missing.pem"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.pem")
	require.NoError(t, os.WriteFile(bad, []byte("not a certificate"), 0o600))
	_, err = loadTLSConfig(bad)
	assert.ErrorContains(t, err, "no certificates")
}
