// Package middleware provides HTTP middleware for the hunter API.
//
// The standard chain is RequestID, Logger, Recovery, CORS, RateLimit.
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
