package domain

import "time"

// Sampling constants
const (
	// DefaultCPUInterval is the delay between the two CPU readings
	DefaultCPUInterval = time.Second
	// DefaultCommandTimeout bounds each external utility invocation
	DefaultCommandTimeout = 10 * time.Second
	// DefaultDiskPath is the filesystem whose usage is reported
	DefaultDiskPath = "/"
)
