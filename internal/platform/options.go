// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/invowk/subsys/internal/hostenv"
	"github.com/invowk/subsys/internal/toolchain"
)

// DefaultShell is the interpreter subsystem commands are run through.
const DefaultShell = "sh"

type (
	// Option configures a platform.
	Option func(*options)

	options struct {
		logger     *log.Logger
		locator    toolchain.Locator
		environ    func() []string
		shell      string
		translator string
	}
)

func newOptions(opts []Option) options {
	o := options{
		locator:    toolchain.PathLocator{},
		environ:    os.Environ,
		shell:      DefaultShell,
		translator: toolchain.DefaultTranslator,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "platform"})
	}
	return o
}

// hostEnv snapshots the host environment. Called once per Configure.
func (o options) hostEnv() hostenv.Env {
	return hostenv.FromEnviron(o.environ())
}

// WithLogger sets the logger used for notices and diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLocator sets how the shell and the path helper are found.
func WithLocator(l toolchain.Locator) Option {
	return func(o *options) { o.locator = l }
}

// WithEnviron sets the source of the host environment, os.Environ by default.
func WithEnviron(environ func() []string) Option {
	return func(o *options) { o.environ = environ }
}

// WithHostEnv pins the host environment to a fixed snapshot.
func WithHostEnv(env hostenv.Env) Option {
	return WithEnviron(env.Environ)
}

// WithShell sets the shell name (or path) subsystem commands run through.
func WithShell(name string) Option {
	return func(o *options) {
		if name != "" {
			o.shell = name
		}
	}
}

// WithTranslator sets the path-translation helper name (or path).
func WithTranslator(name string) Option {
	return func(o *options) {
		if name != "" {
			o.translator = name
		}
	}
}
