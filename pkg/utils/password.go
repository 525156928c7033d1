package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2-SHA256 parameters
const (
	pbkdf2Iterations = 600000
	pbkdf2SaltLen    = 16
	pbkdf2KeyLen     = 32
)

// HashPassword derives a salted PBKDF2-SHA256 hash of the password.
// Output format: pbkdf2:sha256:<iterations>$<salt>$<key>
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)

	encoded := fmt.Sprintf("pbkdf2:sha256:%d$%s$%s",
		pbkdf2Iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// CheckPasswordHash recomputes the derived key and compares in constant time.
func CheckPasswordHash(password, encodedHash string) bool {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 3 {
		return false
	}

	method := strings.Split(parts[0], ":")
	if len(method) != 3 || method[0] != "pbkdf2" || method[1] != "sha256" {
		return false
	}

	iterations, err := strconv.Atoi(method[2])
	if err != nil || iterations <= 0 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(expected) == 0 {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(key, expected) == 1
}
