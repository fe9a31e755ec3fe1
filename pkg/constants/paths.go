package constants

// Health/readiness paths, shared with deployment probes.
const (
	PathHealth = "/health"
	PathReady  = "/ready"
)
