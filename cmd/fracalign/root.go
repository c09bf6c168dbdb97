// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/db47h/fracalign"
	"github.com/db47h/fracalign/internal/config"
	"github.com/db47h/fracalign/internal/logging"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

var errNoInput = errors.New("no numbers given: pass them as arguments or pipe them on stdin")

// maxLineSize is the longest stdin line readLines accepts.
const maxLineSize = 16 << 20

type options struct {
	verbosity int
	cfgFile   string
	mode      string
	precision int
	trim      bool
	quote     bool
}

func newRootCmd() *cobra.Command {
	var o options

	root := &cobra.Command{
		Use:   "fracalign [flags] [number...]",
		Short: "Align a list of fractional numbers",
		Long: `fracalign prints numbers one per line, aligned on their decimal point,
with unnecessary zeros removed. Numbers are taken from the command line or,
if none are given, read one per line from stdin. Put negative numbers after
"--" so that they are not taken for flags.`,
		Example: `  fracalign -- -42 0.3214 1000 -1000.2 2.00000
  printf '1.5\n-20\n' | fracalign --trim
  fracalign -m float64 -p 3 3.14159265 2.5e3`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(cmd.ErrOrStderr(), o.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.CountVarP(&o.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVarP(&o.cfgFile, "config", "c", "", "config file (default is "+config.DefaultPath()+")")
	pf.StringVarP(&o.mode, "mode", "m", "", "input mode: text, float32 or float64")
	pf.IntVarP(&o.precision, "precision", "p", 0, "maximum fractional digits in float modes, -1 for shortest")
	pf.BoolVar(&o.trim, "trim", false, "strip trailing padding from every line")
	pf.BoolVar(&o.quote, "quote", false, "print every line as a quoted string")

	root.AddCommand(newVersionCmd(), newConfigCmd(&o))
	return root
}

// load returns the configuration with command line flags applied.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = config.Mode(o.mode)
	}
	if flags.Changed("precision") {
		cfg.Precision = o.precision
	}
	if flags.Changed("trim") {
		cfg.Trim = o.trim
	}
	if flags.Changed("quote") {
		cfg.Quote = o.quote
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug().
		Str("mode", string(cfg.Mode)).
		Int("precision", cfg.Precision).
		Bool("trim", cfg.Trim).
		Bool("quote", cfg.Quote).
		Msg("Configuration loaded")
	return cfg, nil
}

func run(cmd *cobra.Command, cfg *config.Config, args []string) error {
	logger := logging.GetLogger("align")

	entries := args
	if len(entries) == 0 {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return errNoInput
		}
		var err error
		if entries, err = readLines(in); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		logger.Debug().Int("entries", len(entries)).Msg("Read numbers from stdin")
	}

	done := logging.LogOperationStart(logger, "align")
	lines, err := align(cfg, entries)
	done()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, l := range lines {
		if cfg.Trim {
			l = strings.TrimRight(l, " ")
		}
		if cfg.Quote {
			l = strconv.Quote(l)
		}
		if _, err := fmt.Fprintln(out, l); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// align aligns entries according to the mode in cfg.
func align(cfg *config.Config, entries []string) ([]string, error) {
	var bitSize int
	switch cfg.Mode {
	case config.ModeText:
		return fracalign.AlignStrings(entries)
	case config.ModeFloat32:
		bitSize = 32
	case config.ModeFloat64:
		bitSize = 64
	default:
		return nil, fmt.Errorf("invalid mode %q", cfg.Mode)
	}

	nums := make([]fracalign.Number, len(entries))
	for i, s := range entries {
		f, err := strconv.ParseFloat(s, bitSize)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if bitSize == 32 {
			nums[i] = fracalign.Float32(float32(f))
		} else {
			nums[i] = fracalign.Float64(f)
		}
	}
	return fracalign.Align(nums, cfg.Precision)
}

// readLines returns the non-blank lines of r, with surrounding spaces
// removed. Lines may be up to maxLineSize bytes long.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	n := 0 // lines read, blank ones included
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for s.Scan() {
		n++
		if l := strings.TrimSpace(s.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	if err := s.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d longer than %d bytes: %w", n+1, maxLineSize, err)
		}
		return nil, err
	}
	return lines, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fracalign version %s\n", version)
		},
	}
}

func newConfigCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			b, err := cfg.TOML()
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
