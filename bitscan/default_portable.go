//go:build num_portable
// +build num_portable

package bitscan

// Default is the strategy used by the package-level functions.
type Default = Portable

// DefaultName names the strategy selected at build time.
const DefaultName = "portable"
