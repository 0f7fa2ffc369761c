// Package lifecycle holds shared timing constants for component startup and
// shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and infra clients.
const DefaultTimeout = 10 * time.Second
