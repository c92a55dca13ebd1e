// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// ErrSecretMismatch is returned by CompareSecret when the secret does not
// match the hash.
var ErrSecretMismatch = errors.New("secret does not match")

// HashSecret returns the bcrypt hash of a password or one-time code.
//
// Example usage:
//
//	hash, err := utils.HashSecret("p4ssw0rd")
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}
	return string(hash), nil
}

// CompareSecret checks secret against a hash produced by HashSecret.
// It returns ErrSecretMismatch when they differ.
func CompareSecret(hash, secret string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrSecretMismatch
	}
	if err != nil {
		return fmt.Errorf("error comparing secret: %w", err)
	}
	return nil
}

// GenerateOTP returns a random numeric code of the given length.
func GenerateOTP(length int) (string, error) {
	if length < 1 {
		return "", errors.New("invalid OTP length")
	}

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("error generating OTP: %w", err)
		}
		code[i] = byte('0' + n.Int64())
	}
	return string(code), nil
}
