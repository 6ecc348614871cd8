// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/invowk/subsys/internal/config"
)

// outputFormat resolves the --format flag against the configured default.
func outputFormat(flag string, cfg *config.Config) (config.OutputFormat, error) {
	format := cfg.OutputFormat
	if flag != "" {
		format = config.OutputFormat(flag)
	}
	if valid, errs := format.IsValid(); !valid {
		return "", errs[0]
	}
	return format, nil
}

func writeTOML(w io.Writer, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
