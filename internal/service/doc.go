// Package service implements the business logic of the hunter system:
// player progression, quest resolution, battle simulation, nutrition
// tracking, and voice announcements. Services depend on repository
// interfaces declared alongside them and stay free of HTTP concerns.
//
// Progression and combat math live in pure functions so their behavior is
// testable with fixed random sources; the services around them own
// validation, persistence ordering, and best-effort notification.
package service
