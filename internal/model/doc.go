// Package model defines the domain entities for the Hunter API: players,
// quests, battles, the boss catalog, and food logs, along with the
// request/response DTOs and the RFC 9457 error types shared by the
// service and handler layers.
package model
