package api

const (
	HealthCheckRoute = "/healthz"
	AboutRoute       = "/about"

	ResolveTokenRoute = "/v1/token/resolve"
)
