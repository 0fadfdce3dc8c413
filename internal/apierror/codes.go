package apierror

// Error type URIs following the urn:checkin:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:checkin:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:checkin:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:checkin:error:conflict"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:checkin:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:checkin:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:checkin:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:checkin:error:internal"

	// TypeUnavailable indicates a temporary upstream failure (503)
	TypeUnavailable = "urn:checkin:error:unavailable"

	// TypeInvalidUser indicates the user key was rejected as malformed (400)
	TypeInvalidUser = "urn:checkin:error:invalid_user"

	// TypeInvalidDateRange indicates a from/to pair that cannot be served (400)
	TypeInvalidDateRange = "urn:checkin:error:invalid_date_range"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:checkin:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation       = "Validation Error"
	TitleNotFound         = "Resource Not Found"
	TitleConflict         = "Resource Conflict"
	TitleRateLimit        = "Rate Limit Exceeded"
	TitleUnauthorized     = "Authentication Required"
	TitleForbidden        = "Permission Denied"
	TitleInternal         = "Internal Server Error"
	TitleUnavailable      = "Service Unavailable"
	TitleInvalidUser      = "Invalid User"
	TitleInvalidDateRange = "Invalid Date Range"
	TitleBadRequest       = "Bad Request"
)
