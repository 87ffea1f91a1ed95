package api

// Stable machine-readable error codes carried in error responses.
const (
	codeValidation  = "validation_error"
	codeNotFound    = "not_found"
	codeTimeout     = "upstream_timeout"
	codeUnavailable = "service_unavailable"
	codeUpstream    = "upstream_error"
	codeInternal    = "internal_error"
)
