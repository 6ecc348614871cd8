// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/invowk/subsys/internal/execctx"
	"github.com/invowk/subsys/internal/hostenv"
	pkgplatform "github.com/invowk/subsys/pkg/platform"
)

// Platform names accepted by Lookup.
const (
	NamePOSIX = "posix"
	NameWin32 = "win32"
	NameMinGW = "mingw"
	NameMSYS  = "msys"
	NameMSYS2 = "msys2"
	// NameAuto selects a platform from the host environment.
	NameAuto = "auto"
)

// Platform configures an execution context in place.
type Platform interface {
	// Name returns the platform name.
	Name() string
	// Configure applies the platform's settings to ec. On error ec is unchanged.
	Configure(ctx context.Context, ec *execctx.Context) error
}

// Names lists the platform names Lookup accepts, NameAuto excluded.
func Names() []string {
	return []string{NamePOSIX, NameWin32, NameMinGW, NameMSYS, NameMSYS2}
}

// Lookup returns the platform called name. NameAuto and "" defer to Detect.
func Lookup(name string, opts ...Option) (Platform, error) {
	switch name {
	case NamePOSIX:
		return NewPOSIX(opts...), nil
	case NameWin32:
		return NewNative(opts...), nil
	case NameMinGW:
		return NewSubsystem(VariantMinGW, opts...), nil
	case NameMSYS:
		return NewSubsystem(VariantMSYS, opts...), nil
	case NameMSYS2:
		return NewSubsystem(VariantMSYS2, opts...), nil
	case NameAuto, "":
		o := newOptions(opts)
		return Detect(o.hostEnv(), runtime.GOOS, opts...), nil
	default:
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownPlatform, name, slices.Concat(Names(), []string{NameAuto}))
	}
}

// Detect picks a platform for a host: the MinGW subsystem when the subsystem
// marker is present, Native on other Windows hosts and POSIX elsewhere.
func Detect(env hostenv.Env, goos string, opts ...Option) Platform {
	if hostenv.Probe(env).Active {
		return NewSubsystem(VariantMinGW, opts...)
	}
	if goos == pkgplatform.Windows {
		return NewNative(opts...)
	}
	return NewPOSIX(opts...)
}

// ConfigureNew configures a fresh context with p.
func ConfigureNew(ctx context.Context, p Platform) (*execctx.Context, error) {
	ec := execctx.New()
	if err := p.Configure(ctx, ec); err != nil {
		return nil, err
	}
	return ec, nil
}
