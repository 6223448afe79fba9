// Package lifecycle holds shared constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second
