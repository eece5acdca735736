//go:build num_clamp
// +build num_clamp

package num

const clampOverflow = true
