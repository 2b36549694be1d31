package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrorTokenTTL bounds how long a cached authentication failure
// short-circuits fresh attempts against the identity provider.
const ErrorTokenTTL = 60 * time.Second

// NewErrorToken builds the negative-cache sentinel: an unsigned token
// whose payload carries the failure message and expires ErrorTokenTTL
// after now. Storing it under the same key as a real token lets the
// resolver serve repeated failures from cache instead of hammering a
// possibly-down identity provider.
func NewErrorToken(message string, now time.Time) (string, error) {
	return Encode(
		Header{Alg: "none", Typ: "JWT"},
		Payload{
			Error: message,
			Exp:   jwt.NewNumericDate(now.Add(ErrorTokenTTL)),
		},
	)
}
