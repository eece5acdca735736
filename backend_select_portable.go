//go:build num_portable
// +build num_portable

package num

type activeBackend = portableBackend
