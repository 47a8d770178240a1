package main

// Route constants
const (
	RouteRandomWord = "/api/word"
	RouteNextWord   = "/api/word/next"
	RouteWords      = "/api/words"
	RouteLookup     = "/api/words/:word"
	RouteGuesses    = "/api/guesses"
	RouteHealth     = "/healthz"
)

// Error message constants
const (
	ErrorInvalidLength   = "Word must be 5 letters."
	ErrorInvalidBody     = "Request body must be JSON."
	ErrorTooManyRequests = "Too many requests. Please slow down."
)

// MaxRequestBodyBytes caps the size of JSON request bodies.
const MaxRequestBodyBytes = 64 << 10

// RequestIDHeader carries the request ID in and out of the service.
const RequestIDHeader = "X-Request-Id"
