package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags
type Flags struct {
	Runtime  string
	Memory   string
	Config   string
	Out      string
	Scratch  string
	LogLevel string
}

// NewCommand returns the root command. All filesystem access goes
// through fs.
func NewCommand(fs afero.Fs) *cobra.Command {
	var flags Flags
	cmd := &cobra.Command{
		Use:           "makescripts <directory>",
		Short:         "Generate shell scripts for batch processing of .nd2 files.",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fs, flags, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.Runtime, "runtime", "r", DEFAULT_RUNTIME,
		"the walltime/duration of the job")
	f.StringVarP(&flags.Memory, "memory", "m", DEFAULT_MEMORY,
		"memory per node in GB needed for a job")
	f.StringVar(&flags.Config, "config", DEFAULT_CONFIG,
		"file containing the allocation and username")
	f.StringVar(&flags.Out, "out", ".",
		"directory receiving the logfiles and scripts directories and "+RUN_ALL)
	f.StringVar(&flags.Scratch, "scratch", DEFAULT_SCRATCH,
		"scratch root searched for <username>/<directory>")
	f.StringVar(&flags.LogLevel, "log-level", "info",
		"one of debug, info, warn, or error")
	f.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "mem" {
			name = "memory"
		}
		return pflag.NormalizedName(name)
	})
	return cmd
}

func run(cmd *cobra.Command, fs afero.Fs, flags Flags, directory string) error {
	log := NewLogger(cmd.ErrOrStderr(), flags.LogLevel)
	conf, err := LoadConfig(fs, flags.Config)
	if err != nil {
		return err
	}
	g := NewGenerator(conf, log)
	g.Fs = fs
	g.OutRoot = flags.Out
	g.ScratchRoot = flags.Scratch
	n, err := g.Generate(directory, flags.Runtime, flags.Memory)
	switch {
	case errors.Is(err, ErrDirNotFound), errors.Is(err, ErrNoMacro):
		fmt.Fprintln(cmd.OutOrStdout(), err)
		return nil
	case err != nil:
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), Summary(n))
	return nil
}

// NormalizeArgs rewrites the single-dash -mem form, which pflag would
// read as -m em, to --mem. Arguments after "--" are left alone.
func NormalizeArgs(args []string) []string {
	ret := make([]string, len(args))
	copy(ret, args)
	for i, a := range ret {
		switch {
		case a == "--":
			return ret
		case a == "-mem", strings.HasPrefix(a, "-mem="):
			ret[i] = "-" + a
		}
	}
	return ret
}

func main() {
	cmd := NewCommand(afero.NewOsFs())
	cmd.SetArgs(NormalizeArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
