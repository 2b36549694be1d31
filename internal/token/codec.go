package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed indicates a token that is not structurally decodable.
// Callers treat such tokens as a cache miss, never as a fatal error.
var ErrMalformed = errors.New("malformed token")

// Header is the metadata segment of a token.
type Header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Payload holds the claims the cache logic cares about.
// Unknown claims in real Cognito tokens are ignored on decode.
type Payload struct {
	// Error carries the failure message of a cached negative result.
	Error string `json:"error,omitempty"`

	// Exp is the expiry claim. Nil means no expiry asserted,
	// which the validity check treats as "valid forever".
	Exp *jwt.NumericDate `json:"exp,omitempty"`

	// Nbf is the not-before claim.
	Nbf *jwt.NumericDate `json:"nbf,omitempty"`
}

// Encode serializes header and payload independently as unpadded
// base64url JSON and joins them with a dot. The result has exactly two
// segments; no signature is produced.
func Encode(header Header, payload Payload) (string, error) {
	h, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("marshaling header: %w", err)
	}
	p, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(h) + "." + base64.RawURLEncoding.EncodeToString(p), nil
}

// Decode extracts the payload segment of a token. Both the two-segment
// tokens produced by Encode and full three-segment JWTs (as returned by
// Cognito) are accepted; a trailing signature segment is ignored, never
// verified. A structurally bad token fails with an error wrapping
// ErrMalformed.
func Decode(tok string) (*Payload, error) {
	segments := strings.Split(tok, ".")
	if len(segments) < 2 || len(segments) > 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3 segments, got %d", ErrMalformed, len(segments))
	}
	var payload Payload
	if err := decodeSegment(segments[1], &payload); err != nil {
		return nil, fmt.Errorf("%w: payload: %s", ErrMalformed, err)
	}
	return &payload, nil
}

// DecodeHeader extracts the header segment of a token.
func DecodeHeader(tok string) (*Header, error) {
	segments := strings.Split(tok, ".")
	if len(segments) < 2 || len(segments) > 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3 segments, got %d", ErrMalformed, len(segments))
	}
	var header Header
	if err := decodeSegment(segments[0], &header); err != nil {
		return nil, fmt.Errorf("%w: header: %s", ErrMalformed, err)
	}
	return &header, nil
}

func decodeSegment(segment string, out any) error {
	// be liberal about padding; some encoders keep trailing '='
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(segment, "="))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
