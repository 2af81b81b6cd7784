package ratelimit

// exemptRoutes are never rate limited.
var exemptRoutes = map[string]string{
	"/health":  "GET",
	"/metrics": "GET",
}

// Exempt reports whether a request path and method bypass the limiter.
func Exempt(path string, method string) bool {
	m, ok := exemptRoutes[path]
	return ok && m == method
}
