package core

import "strings"

// TokenType selects which representation of an authenticated Cognito
// session is returned to the caller.
type TokenType string

const (
	// TokenTypeAccess returns the session's access token.
	// This is the default when no token type is requested.
	TokenTypeAccess TokenType = "access"

	// TokenTypeID returns the session's id token.
	TokenTypeID TokenType = "id"

	// TokenTypeRawRequest returns the raw authentication result
	// serialized as JSON, for callers that need more than a single token.
	TokenTypeRawRequest TokenType = "raw_request"
)

// cacheKeySeparator joins the credential fields into a cache key.
// The ASCII unit separator cannot appear in legitimate field values.
const cacheKeySeparator = "\x1f"

// CredentialSet is the full set of inputs for a token request.
// It is constructed per call and never persisted itself; only the
// derived cache key is used as a lookup index.
type CredentialSet struct {
	// Username is the Cognito user name. Required.
	Username string `json:"username"`

	// Password is the user's password. Required.
	Password string `json:"password"`

	// Region is the AWS region of the user pool (e.g. "us-east-1"). Required.
	Region string `json:"region"`

	// ClientID is the Cognito app client id. Required.
	ClientID string `json:"client_id"`

	// UserPoolID is the Cognito user pool id. Required.
	UserPoolID string `json:"user_pool_id"`

	// TokenType selects the token representation. Defaults to "access".
	TokenType TokenType `json:"token_type"`

	// ClientSecret is the optional app client secret.
	ClientSecret string `json:"client_secret,omitempty"`
}

// Validate checks that all mandatory fields are present and applies the
// token type default. It returns a *ValidationError naming the first
// missing field.
func (c *CredentialSet) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"username", c.Username},
		{"password", c.Password},
		{"region", c.Region},
		{"client_id", c.ClientID},
		{"user_pool_id", c.UserPoolID},
	}
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	if c.TokenType == "" {
		c.TokenType = TokenTypeAccess
	}
	return nil
}

// CacheKey derives the deterministic lookup key for this credential set.
// All seven fields participate, so requesting an "id" token caches
// independently from an "access" token for the same user.
func (c CredentialSet) CacheKey() string {
	tokenType := c.TokenType
	if tokenType == "" {
		tokenType = TokenTypeAccess
	}
	return strings.Join([]string{
		c.Username,
		c.Password,
		c.Region,
		c.ClientID,
		c.UserPoolID,
		string(tokenType),
		c.ClientSecret,
	}, cacheKeySeparator)
}

// ParseCacheKey splits a cache key back into its credential fields,
// for inspection surfaces. The password travels in the key; display
// code must mask it. The second return is false for keys that were not
// produced by CacheKey.
func ParseCacheKey(key string) (CredentialSet, bool) {
	parts := strings.Split(key, cacheKeySeparator)
	if len(parts) != 7 {
		return CredentialSet{}, false
	}
	return CredentialSet{
		Username:     parts[0],
		Password:     parts[1],
		Region:       parts[2],
		ClientID:     parts[3],
		UserPoolID:   parts[4],
		TokenType:    TokenType(parts[5]),
		ClientSecret: parts[6],
	}, true
}
