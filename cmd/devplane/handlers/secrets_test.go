package handlers

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devplane/devplane/internal/secrets"
)

// saveAndRestoreSecretsFactories saves and restores secrets factories.
func saveAndRestoreSecretsFactories(t *testing.T) {
	origGenerate := generateCredentials

	t.Cleanup(func() {
		generateCredentials = origGenerate
	})
}

func TestSecrets_Styled(t *testing.T) {
	saveAndRestoreSecretsFactories(t)

	generateCredentials = func() (*secrets.Credentials, error) {
		return &secrets.Credentials{
			DatabasePassword:  "db-pass-value",
			AdminPassword:     "admin-pass-value",
			AdminPasswordHash: "$2a$10$fakehash",
			SessionSigningKey: "deadbeef",
		}, nil
	}

	output := captureOutput(func() {
		require.NoError(t, Secrets(false))
	})

	assert.Contains(t, output, "devplane secrets")
	assert.Contains(t, output, "Database")
	assert.Contains(t, output, "db-pass-value")
	assert.Contains(t, output, "Admin")
	assert.Contains(t, output, "$2a$10$fakehash")
	assert.Contains(t, output, "Session")
	assert.Contains(t, output, "deadbeef")
	assert.Contains(t, output, "never stored")
}

func TestSecrets_JSON(t *testing.T) {
	output := captureOutput(func() {
		require.NoError(t, Secrets(true))
	})

	var creds secrets.Credentials
	require.NoError(t, json.Unmarshal([]byte(output), &creds))

	assert.Len(t, creds.DatabasePassword, secrets.PasswordLength)
	assert.Len(t, creds.AdminPassword, secrets.PasswordLength)
	assert.True(t, strings.HasPrefix(creds.AdminPasswordHash, "$2a$"))
	// 32 bytes hex encoded
	assert.Len(t, creds.SessionSigningKey, 64)
}

func TestSecrets_FreshEveryRun(t *testing.T) {
	first := captureOutput(func() {
		require.NoError(t, Secrets(true))
	})
	second := captureOutput(func() {
		require.NoError(t, Secrets(true))
	})

	assert.NotEqual(t, first, second)
}

func TestSecrets_GenerateError(t *testing.T) {
	saveAndRestoreSecretsFactories(t)

	generateCredentials = func() (*secrets.Credentials, error) {
		return nil, errors.New("entropy exhausted")
	}

	err := Secrets(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate credentials")
}
