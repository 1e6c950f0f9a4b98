package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandStructure(t *testing.T) {
	assert.NotNil(t, validateCmd)
	assert.Equal(t, "validate", validateCmd.Use)
	assert.NotEmpty(t, validateCmd.Short)
	assert.Contains(t, validateCmd.Long, "Checks performed")
	assert.Contains(t, validateCmd.Long, "gosecret validate")
	assert.NotNil(t, validateCmd.RunE)
}

func TestRunValidate(t *testing.T) {
	resetFlags(t)

	cfgFile = filepath.Join(t.TempDir(), "gosecret.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("store:\n  enabled: true\n  path: /data/h.db\n"), 0644))

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	defer validateCmd.SetOut(nil)

	require.NoError(t, runValidate(validateCmd, nil))
	assert.Contains(t, buf.String(), "Store: /data/h.db")
	assert.Contains(t, buf.String(), "Configuration is valid")
}

func TestRunValidate_Invalid(t *testing.T) {
	resetFlags(t)

	cfgFile = filepath.Join(t.TempDir(), "gosecret.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("reconstruction:\n  workers: 0\n"), 0644))

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reconstruction.workers")
}
