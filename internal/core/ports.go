package core

import "context"

// Cache is the external key/value store collaborator.
// It has no TTL semantics; expiry is enforced by the resolver via the
// token's own claims. Implementations: in-memory store, file store.
type Cache interface {
	// Get returns the value stored under key, and whether it was found.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous entry.
	Set(ctx context.Context, key, value string) error
}

// Authenticator performs the real Cognito handshake.
// Implementations: SRP client, test fakes.
type Authenticator interface {
	// Authenticate exchanges the credential set for a token string.
	// On any handshake failure (bad credentials, network error,
	// misconfiguration) the returned error carries a human-readable message.
	Authenticate(ctx context.Context, creds CredentialSet) (string, error)
}
