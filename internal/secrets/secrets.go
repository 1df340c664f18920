// Package secrets generates the per-environment platform credentials the
// provisioning layer injects: database password, workspace admin password
// with its bcrypt hash, and a session signing key.
package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// PasswordLength is the generated password length in characters.
const PasswordLength = 32

// MinPasswordLength guards against callers asking for weak credentials.
const MinPasswordLength = 16

// passwordAlphabet excludes glyphs that read ambiguously when copied by
// hand: 0/O/o, 1/l/I.
const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// signingKeyBytes is the session signing key size (256 bits).
const signingKeyBytes = 32

// Credentials is the credential set generated for one environment.
type Credentials struct {
	DatabasePassword  string `json:"database_password"`
	AdminPassword     string `json:"admin_password"`
	AdminPasswordHash string `json:"admin_password_hash"`
	SessionSigningKey string `json:"session_signing_key"`
}

// GeneratePassword generates a random password of the given length from
// the unambiguous alphabet.
func GeneratePassword(length int) (string, error) {
	if length < MinPasswordLength {
		return "", fmt.Errorf("password length %d too short: minimum %d", length, MinPasswordLength)
	}

	max := big.NewInt(int64(len(passwordAlphabet)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		password[i] = passwordAlphabet[n.Int64()]
	}

	return string(password), nil
}

// GenerateSigningKey generates a random 32-byte signing key, hex encoded.
func GenerateSigningKey() (string, error) {
	key := make([]byte, signingKeyBytes)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}

	return hex.EncodeToString(key), nil
}

// HashPassword returns the bcrypt hash of a password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Generate creates a fresh credential set for one environment.
func Generate() (*Credentials, error) {
	dbPassword, err := GeneratePassword(PasswordLength)
	if err != nil {
		return nil, err
	}

	adminPassword, err := GeneratePassword(PasswordLength)
	if err != nil {
		return nil, err
	}

	adminHash, err := HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}

	signingKey, err := GenerateSigningKey()
	if err != nil {
		return nil, err
	}

	return &Credentials{
		DatabasePassword:  dbPassword,
		AdminPassword:     adminPassword,
		AdminPasswordHash: adminHash,
		SessionSigningKey: signingKey,
	}, nil
}
