// Package id generates opaque identifiers and tokens using NanoID.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// tokenLength is the length of session tokens. 32 characters of the
// URL-safe alphabet gives ~190 bits of entropy, comfortably opaque.
const tokenLength = 32

// Token creates a cryptographically random session token.
// Returns an error if the system has insufficient entropy.
func Token() (string, error) {
	token, err := gonanoid.New(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// Suffix creates a short random suffix of n characters, used to make
// generated filenames collision resistant.
func Suffix(n int) (string, error) {
	s, err := gonanoid.New(n)
	if err != nil {
		return "", fmt.Errorf("generate suffix: %w", err)
	}
	return s, nil
}

// MustSuffix is like Suffix but panics if generation fails. Use only when
// failure should crash the program (e.g., during initialization).
func MustSuffix(n int) string {
	s, err := Suffix(n)
	if err != nil {
		panic(fmt.Sprintf("failed to generate suffix: %v", err))
	}
	return s
}
