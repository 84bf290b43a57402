// ocio - color space management for Go
// Copyright (C) 2026  The ocio Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Ocioinfo prints information about the color spaces in a config file.
//
// Usage:
//
//	ocioinfo list config.yaml
//	ocioinfo show config.yaml lg10
//	ocioinfo check config.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/karidapink/ocio"
	"github.com/karidapink/ocio/config"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "ocioinfo",
		Short:        "inspect color space configs",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				ocio.SetLogger(newLogger(cmd.ErrOrStderr()))
			}
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			ocio.SetLogger(nil)
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug messages to stderr")

	cmd.AddCommand(newListCmd(), newShowCmd(), newCheckCmd())
	return cmd
}

// newLogger returns a debug logger writing to w.  Text output is used
// when w is a terminal, JSON output otherwise.
func newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list CONFIG",
		Short: "list the color spaces in a config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadFile(args[0], nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range c.ColorSpaceNames() {
				cs := c.ColorSpace(name)
				family := cs.Family()
				if family == "" {
					family = "-"
				}
				_, err := fmt.Fprintf(out, "%-20s %-12s %s\n", name, family, cs.BitDepth())
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show CONFIG NAME",
		Short: "describe a color space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadFile(args[0], nil)
			if err != nil {
				return err
			}
			cs := c.ColorSpace(args[1])
			if cs == nil {
				cs = c.Role(args[1])
			}
			if cs == nil {
				return fmt.Errorf("%s: no color space or role %q", args[0], args[1])
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), cs)
			return err
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check CONFIG",
		Short: "load and validate a config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadFile(args[0], nil)
			if err != nil {
				return err
			}
			if err := c.Validate(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d color spaces, %d roles\n",
				c.NumColorSpaces(), len(c.Roles()))
			return err
		},
	}
}
