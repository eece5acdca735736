//go:build !num_clamp
// +build !num_clamp

package num

// clampOverflow selects the value ScanU128 returns on overflow: Zero by
// default, MaxU128 when built with '-tags num_clamp'.
const clampOverflow = false
