// Package jobs contains background workers that run alongside the HTTP
// server. Each job owns its ticker goroutine and exposes Start/Stop for the
// server's lifecycle to drive.
package jobs
