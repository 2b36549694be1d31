package resolver

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/disruptops/cognitocache/internal/core"
	"github.com/disruptops/cognitocache/internal/token"
)

// Source describes where a resolution's value came from.
type Source string

const (
	// SourceCache means a still-valid token was served from the cache.
	SourceCache Source = "cache"

	// SourceAuthenticator means the identity provider was contacted.
	SourceAuthenticator Source = "authenticator"

	// SourceNegativeCache means a recent failure was served from the
	// cache instead of retrying the identity provider.
	SourceNegativeCache Source = "negative_cache"
)

// Resolution is the discriminated result of a resolve call.
type Resolution struct {
	// Value is the bearer token, or the failure message if Failed is set.
	Value string `json:"value"`

	// Failed marks Value as an authentication failure message.
	Failed bool `json:"failed"`

	// Source tells where the value came from.
	Source Source `json:"source"`
}

// Resolver decides, per credential set, whether to reuse a cached token,
// fetch a fresh one, or serve a cached negative result. It is the sole
// writer of the cache it is given.
type Resolver struct {
	cache core.Cache
	auth  core.Authenticator
	now   func() time.Time
	group singleflight.Group
}

type Option func(*Resolver)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

func New(cache core.Cache, auth core.Authenticator, opts ...Option) *Resolver {
	r := &Resolver{
		cache: cache,
		auth:  auth,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve is the string-only boundary contract: the returned string is
// either a bearer token or a human-readable authentication failure
// message, with no explicit success flag. Only precondition violations
// (*core.ValidationError) surface as errors. Callers needing to branch
// on the outcome should use ResolveDetailed instead.
func (r *Resolver) Resolve(ctx context.Context, creds core.CredentialSet) (string, error) {
	res, err := r.ResolveDetailed(ctx, creds)
	if err != nil {
		return "", err
	}
	return res.Value, nil
}

// ResolveDetailed validates the credential set and resolves its token.
// Concurrent calls for the same cache key share a single cache-check and
// authentication round trip.
func (r *Resolver) ResolveDetailed(ctx context.Context, creds core.CredentialSet) (*Resolution, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	key := creds.CacheKey()

	v, err, _ := r.group.Do(key, func() (any, error) {
		res, err := r.resolveKey(ctx, key, creds)
		if err != nil {
			return nil, err
		}
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Resolution), nil
}

func (r *Resolver) resolveKey(ctx context.Context, key string, creds core.CredentialSet) (*Resolution, error) {
	logger := log.Ctx(ctx)
	now := r.now()

	cached, found, err := r.cache.Get(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Msg("cache lookup failed, treating as miss")
		found = false
	}

	if found {
		payload, err := token.Decode(cached)
		if err != nil {
			logger.Debug().Err(err).Msg("cached entry is not a decodable token, re-authenticating")
		} else if token.Valid(payload, now) {
			if payload.Error != "" {
				logger.Debug().Msg("serving cached authentication failure")
				return &Resolution{Value: payload.Error, Failed: true, Source: SourceNegativeCache}, nil
			}
			logger.Debug().Msg("serving cached token")
			return &Resolution{Value: cached, Failed: false, Source: SourceCache}, nil
		} else {
			logger.Debug().Msg("cached token expired or not yet valid, re-authenticating")
		}
	}

	fresh, authErr := r.auth.Authenticate(ctx, creds)
	if authErr != nil {
		message := authErr.Error()
		logger.Info().Str("reason", message).Msg("authentication failed, caching negative result")

		sentinel, err := token.NewErrorToken(message, now)
		if err != nil {
			logger.Error().Err(err).Msg("building error token failed, skipping negative cache")
		} else if err := r.cache.Set(ctx, key, sentinel); err != nil {
			logger.Warn().Err(err).Msg("storing error token failed")
		}

		// the caller receives the bare message, not the encoded sentinel
		return &Resolution{Value: message, Failed: true, Source: SourceAuthenticator}, nil
	}

	if err := r.cache.Set(ctx, key, fresh); err != nil {
		logger.Warn().Err(err).Msg("storing token failed")
	}
	logger.Debug().Msg("serving freshly authenticated token")
	return &Resolution{Value: fresh, Failed: false, Source: SourceAuthenticator}, nil
}
