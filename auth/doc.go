// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides authentication and token generation utilities.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(campaignID, salt)
	err := auth.ValidateAdminKey(campaignID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same campaign ID and salt always produce the same key. This allows
validation without storing the key in the database.

# Bearer Secrets

The ingestion and staff endpoints share one service secret:

	err := auth.ValidateBearerSecret(r.Header.Get("Authorization"), secret)

The header must be exactly "Bearer <secret>". Comparison is constant-time.

# Response Tokens

Response tokens bind a campaign to a student for emailed links:

	token := auth.MintResponseToken(campaignID, studentID, expiresAt, salt)
	campaignID, studentID, err := auth.ParseResponseToken(token, salt)

The payload "campaignID.studentID.expiryUnix" is URL-safe base64 encoded and
signed with HMAC-SHA256. ParseResponseToken returns ErrInvalidResponseToken
for tampered or malformed tokens and ErrExpiredResponseToken once the link
is past its ResponseTokenTTL (72 hours).

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For privacy-preserving abuse detection on apology submissions:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
