// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single lifecycle hook (ping, index build,
// graceful shutdown) may take before it is abandoned.
const DefaultTimeout = 10 * time.Second
