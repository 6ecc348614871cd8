// SPDX-License-Identifier: MPL-2.0

package platform

import "github.com/invowk/subsys/internal/hostenv"

// Variant selects one of the POSIX-emulation subsystems a Subsystem configures.
type Variant int

const (
	// VariantMinGW is the GNU toolchain subsystem, activated by the marker variable.
	VariantMinGW Variant = iota
	// VariantMSYS is the first-generation POSIX-compatibility layer.
	VariantMSYS
	// VariantMSYS2 is the second-generation layer. It is selected explicitly and
	// never probes.
	VariantMSYS2
)

// subsystemMaxLineLength is lower than the native limit: the subsystem's
// argument marshalling to native programs costs headroom.
const subsystemMaxLineLength = 2048

// variantTraits is the only place variants differ.
type variantTraits struct {
	name          string
	hostOS        string
	subsystem     hostenv.Subsystem
	unconditional bool
	notice        string
}

var variants = map[Variant]variantTraits{
	VariantMinGW: {
		name:      NameMinGW,
		hostOS:    "msys",
		subsystem: hostenv.SubsystemMinGW,
	},
	VariantMSYS: {
		name:      NameMSYS,
		hostOS:    "msys",
		subsystem: hostenv.SubsystemMSYS,
	},
	VariantMSYS2: {
		name:          NameMSYS2,
		hostOS:        "msys2",
		subsystem:     hostenv.SubsystemMSYS2,
		unconditional: true,
		notice:        "platform set to MSYS2",
	},
}

func (v Variant) traits() variantTraits {
	if t, ok := variants[v]; ok {
		return t
	}
	return variants[VariantMinGW]
}

// String returns the variant's platform name.
func (v Variant) String() string { return v.traits().name }

// HostOS returns the host-OS tag the variant writes to configured contexts.
func (v Variant) HostOS() string { return v.traits().hostOS }

// Unconditional reports whether the variant configures without probing for the marker.
func (v Variant) Unconditional() bool { return v.traits().unconditional }
