// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidAdminKey      = errors.New("invalid admin key")
	ErrInvalidBearerSecret  = errors.New("invalid bearer secret")
	ErrInvalidResponseToken = errors.New("invalid response token")
	ErrExpiredResponseToken = errors.New("response token expired")
)

// ResponseTokenTTL is how long an emailed response link stays valid.
const ResponseTokenTTL = 72 * time.Hour

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateAdminKey creates an HMAC-based admin key for a campaign
// This is deterministic and verifiable
func GenerateAdminKey(campaignID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(campaignID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the campaign
func ValidateAdminKey(campaignID, adminKey, salt string) error {
	expected := GenerateAdminKey(campaignID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// ValidateBearerSecret checks an Authorization header value against the
// configured service secret. The header must be exactly "Bearer <secret>",
// no normalization.
func ValidateBearerSecret(header, secret string) error {
	expected := "Bearer " + secret
	if !hmac.Equal([]byte(header), []byte(expected)) {
		return ErrInvalidBearerSecret
	}
	return nil
}

// MintResponseToken creates a signed, expiring token binding a campaign to a
// student. Tokens ride in emailed links, so everything is URL-safe base64.
func MintResponseToken(campaignID, studentID string, expiresAt time.Time, salt string) string {
	payload := campaignID + "." + studentID + "." + strconv.FormatInt(expiresAt.Unix(), 10)
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return encoded + "." + signPayload(payload, salt)
}

// ParseResponseToken verifies a response token and returns the campaign and
// student it was minted for. The signature is checked before the expiry, so
// a tampered token never reports as merely expired.
func ParseResponseToken(token, salt string) (campaignID, studentID string, err error) {
	dot := strings.LastIndex(token, ".")
	if dot < 0 {
		return "", "", ErrInvalidResponseToken
	}
	encoded, sig := token[:dot], token[dot+1:]

	raw, decErr := base64.RawURLEncoding.DecodeString(encoded)
	if decErr != nil {
		return "", "", ErrInvalidResponseToken
	}
	payload := string(raw)

	if !hmac.Equal([]byte(sig), []byte(signPayload(payload, salt))) {
		return "", "", ErrInvalidResponseToken
	}

	parts := strings.Split(payload, ".")
	if len(parts) != 3 {
		return "", "", ErrInvalidResponseToken
	}

	exp, parseErr := strconv.ParseInt(parts[2], 10, 64)
	if parseErr != nil {
		return "", "", ErrInvalidResponseToken
	}
	if time.Now().After(time.Unix(exp, 0)) {
		return "", "", ErrExpiredResponseToken
	}

	return parts[0], parts[1], nil
}

func signPayload(payload, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
