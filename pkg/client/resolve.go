package client

import (
	"context"

	"github.com/disruptops/cognitocache/internal/api"
	"github.com/disruptops/cognitocache/internal/core"
	"github.com/disruptops/cognitocache/internal/resolver"
)

// ResolveToken asks the server for a token for the given credential set.
// The returned Resolution mirrors the local resolver's contract: Value is
// either a bearer token or the authentication failure message, with
// Failed telling them apart.
func (c *Client) ResolveToken(
	ctx context.Context,
	creds core.CredentialSet,
) (*resolver.Resolution, string, error) {
	var result resolver.Resolution
	correlation, err := c.post(ctx, c.url().
		setPath(api.ResolveTokenRoute).
		build(), creds, &result)
	if err != nil {
		return nil, correlation, err
	}
	return &result, correlation, nil
}
