// SPDX-License-Identifier: MPL-2.0

package hostenv

import "strings"

const (
	// SubsystemNative is a plain Windows host with no emulation layer active.
	SubsystemNative Subsystem = iota
	// SubsystemMinGW is the minimal GNU toolchain subsystem.
	SubsystemMinGW
	// SubsystemMSYS is the first-generation POSIX compatibility layer.
	SubsystemMSYS
	// SubsystemMSYS2 is the second-generation POSIX compatibility layer.
	SubsystemMSYS2
)

type (
	// Subsystem identifies the emulation layer a build runs under.
	Subsystem int

	// Detection is the result of probing a host environment.
	Detection struct {
		// Active is true when the subsystem marker variable is set.
		Active bool
		// System is the marker value, e.g. "UCRT64" or "MSYS".
		System string
		// Prefix is the toolchain installation root, when known.
		Prefix string
	}
)

// String returns the subsystem name.
func (s Subsystem) String() string {
	switch s {
	case SubsystemNative:
		return "native-windows"
	case SubsystemMinGW:
		return "mingw"
	case SubsystemMSYS:
		return "msys"
	case SubsystemMSYS2:
		return "msys2"
	default:
		return "unknown"
	}
}

// Probe reports whether a POSIX-emulation subsystem is active in env.
// A missing marker is the normal native case, never an error.
func Probe(env Env) Detection {
	system, ok := env.Lookup(VarMSYSTEM)
	if !ok {
		return Detection{}
	}
	return Detection{
		Active: true,
		System: strings.TrimSpace(system),
		Prefix: env.Get(VarMinGWPrefix),
	}
}

// Resolve maps the detection onto the subsystem a configurator asked for:
// the requested one when the marker is present, native otherwise.
func (d Detection) Resolve(requested Subsystem) Subsystem {
	if !d.Active {
		return SubsystemNative
	}
	return requested
}

// IsMSYSShell reports whether the marker names the bare MSYS environment rather
// than one of the toolchain environments (MINGW64, UCRT64, CLANG64, ...).
func (d Detection) IsMSYSShell() bool {
	return strings.EqualFold(d.System, "MSYS")
}
