// Package lifecycle holds timeouts shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
