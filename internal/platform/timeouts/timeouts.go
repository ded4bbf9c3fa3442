// Package timeouts defines shared timeout constants used across the server.
// Centralizing these values prevents drift between boundaries and makes the
// durations discoverable.
package timeouts

import "time"

// ProviderRequest caps the time allowed for a single SendGrid API call made
// on behalf of a tool invocation. A call that exceeds this deadline fails
// with a timeout error instead of hanging the tool call.
const ProviderRequest = 30 * time.Second

// ReadHeader limits how long the HTTP transport waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP transport waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
