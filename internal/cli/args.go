package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is reported by --version and may be set at link time.
var Version = "dev"

// ErrUsage wraps malformed command lines.
var ErrUsage = errors.New("usage")

// Args is the parsed invocation.
type Args struct {
	// Directory to explore. Defaults to the working directory.
	Directory string
	// LogFile receives debug logs when set.
	LogFile string
}

func newRootCommand(args *Args, ran *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "breeze [directory]",
		Short:         "A terminal-based file explorer",
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, positional []string) error {
			if len(positional) == 1 {
				args.Directory = positional[0]
			}
			*ran = true
			return nil
		},
	}
	cmd.Flags().StringVar(&args.LogFile, "log-file", "", "append debug logs to `path`")
	return cmd
}

// Parse applies the command grammar to argv, where argv[0] is the program
// name. It reports proceed=false when the invocation was fully handled by
// printing help or the version to out.
func Parse(argv []string, out io.Writer) (args Args, proceed bool, err error) {
	args = Args{Directory: "."}
	if len(argv) == 0 {
		argv = []string{"breeze"}
	}

	var ran bool
	cmd := newRootCommand(&args, &ran)
	cmd.SetArgs(argv[1:])
	cmd.SetOut(out)
	cmd.SetErr(out)

	if err := cmd.Execute(); err != nil {
		return Args{}, false, fmt.Errorf("%w: %w (see 'breeze --help')", ErrUsage, err)
	}
	return args, ran, nil
}
