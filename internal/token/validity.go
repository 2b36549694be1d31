package token

import "time"

// Valid reports whether the payload is usable at the given time.
// A payload is invalid once its exp claim lies in the past or while its
// nbf claim lies in the future. A payload carrying neither claim is
// always valid: upstream identity providers omit the claims to assert
// "no expiry". A nil payload (decode failed upstream) is invalid.
func Valid(payload *Payload, now time.Time) bool {
	if payload == nil {
		return false
	}
	if payload.Exp != nil && payload.Exp.Before(now) {
		return false
	}
	if payload.Nbf != nil && payload.Nbf.After(now) {
		return false
	}
	return true
}
