// Package handler provides the HTTP endpoint implementations for the
// hunter API, one handler struct per domain. Responses are the raw entity
// JSON; errors are RFC 9457 Problem Details, except the battle endpoints
// which keep a flat {"error": message} failure shape.
package handler
