package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validCreds() CredentialSet {
	return CredentialSet{
		Username:   "jdoe",
		Password:   "hunter2",
		Region:     "us-east-1",
		ClientID:   "client-abc",
		UserPoolID: "us-east-1_XYZ",
	}
}

func TestCredentialSet_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CredentialSet)
		wantField string
	}{
		{name: "missing username", mutate: func(c *CredentialSet) { c.Username = "" }, wantField: "username"},
		{name: "missing password", mutate: func(c *CredentialSet) { c.Password = "" }, wantField: "password"},
		{name: "missing region", mutate: func(c *CredentialSet) { c.Region = "" }, wantField: "region"},
		{name: "missing client id", mutate: func(c *CredentialSet) { c.ClientID = "" }, wantField: "client_id"},
		{name: "missing user pool id", mutate: func(c *CredentialSet) { c.UserPoolID = "" }, wantField: "user_pool_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := validCreds()
			tt.mutate(&creds)

			err := creds.Validate()
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}

func TestCredentialSet_Validate_DefaultsTokenType(t *testing.T) {
	creds := validCreds()
	if err := creds.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if creds.TokenType != TokenTypeAccess {
		t.Errorf("token type = %q, want %q", creds.TokenType, TokenTypeAccess)
	}

	creds = validCreds()
	creds.TokenType = TokenTypeID
	if err := creds.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if creds.TokenType != TokenTypeID {
		t.Errorf("token type = %q, want unchanged %q", creds.TokenType, TokenTypeID)
	}
}

func TestCredentialSet_CacheKey(t *testing.T) {
	a := validCreds()
	b := validCreds()

	if a.CacheKey() != b.CacheKey() {
		t.Errorf("identical credential sets produced different cache keys")
	}

	// each field must participate in the key
	mutations := []struct {
		name   string
		mutate func(*CredentialSet)
	}{
		{name: "username", mutate: func(c *CredentialSet) { c.Username = "other" }},
		{name: "password", mutate: func(c *CredentialSet) { c.Password = "other" }},
		{name: "region", mutate: func(c *CredentialSet) { c.Region = "eu-west-1" }},
		{name: "client id", mutate: func(c *CredentialSet) { c.ClientID = "other" }},
		{name: "user pool id", mutate: func(c *CredentialSet) { c.UserPoolID = "other" }},
		{name: "token type", mutate: func(c *CredentialSet) { c.TokenType = TokenTypeID }},
		{name: "client secret", mutate: func(c *CredentialSet) { c.ClientSecret = "shhh" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			changed := validCreds()
			tt.mutate(&changed)
			if changed.CacheKey() == a.CacheKey() {
				t.Errorf("changing %s did not change the cache key", tt.name)
			}
		})
	}
}

func TestCredentialSet_CacheKey_EmptyTokenTypeEqualsAccess(t *testing.T) {
	implicit := validCreds()
	explicit := validCreds()
	explicit.TokenType = TokenTypeAccess

	if implicit.CacheKey() != explicit.CacheKey() {
		t.Errorf("empty token type and explicit 'access' produced different keys")
	}
}

func TestParseCacheKey_RoundTrip(t *testing.T) {
	creds := validCreds()
	creds.TokenType = TokenTypeID
	creds.ClientSecret = "shhh"

	parsed, ok := ParseCacheKey(creds.CacheKey())
	if !ok {
		t.Fatalf("ParseCacheKey() failed on a key produced by CacheKey()")
	}
	if diff := cmp.Diff(creds, parsed); diff != "" {
		t.Errorf("ParseCacheKey() mismatch (-want +got):\n%s", diff)
	}

	if _, ok := ParseCacheKey("not a cache key"); ok {
		t.Errorf("ParseCacheKey() accepted a foreign string")
	}
}
