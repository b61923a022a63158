// Package lifecycle holds shared settings for starting and stopping long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up probes and graceful shutdown of servers and pools.
const DefaultTimeout = 10 * time.Second
