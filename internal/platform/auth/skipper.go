package auth

// publicPaths lists URL paths that bypass authentication. These are
// infrastructure endpoints (health checks) that probes and load balancers
// must reach without credentials.
var publicPaths = map[string]bool{
	"/health":    true,
	"/health/db": true,
}

// IsPublicPath reports whether the given path is a public infrastructure
// endpoint that should bypass the bearer-token check.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
