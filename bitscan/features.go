package bitscan

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HardwareFeatures lists the host CPU features that back the intrinsic
// strategy. It is informational only; dispatch never depends on it.
func HardwareFeatures() []string {
	var out []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasPOPCNT {
			out = append(out, "popcnt")
		}
		if cpu.X86.HasBMI1 {
			out = append(out, "bmi1")
		}
		if cpu.X86.HasBMI2 {
			out = append(out, "bmi2")
		}

	case "arm64":
		// CLZ and RBIT are baseline; popcount goes through the vector unit.
		out = append(out, "clz", "rbit")
		if cpu.ARM64.HasASIMD {
			out = append(out, "asimd")
		}

	case "ppc64", "ppc64le":
		out = append(out, "cntlzd", "popcntd")
		if cpu.PPC64.IsPOWER9 {
			out = append(out, "cnttzd")
		}

	case "s390x":
		out = append(out, "flogr")
	}
	return out
}
