// Package jobs implements background tasks that run independently of HTTP
// request handling. The only job today is the daily quest reset, which
// re-opens resolved daily quests on a fixed cadence.
package jobs
