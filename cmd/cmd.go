// Package cmd implements the bases command
//
// It is in a sub package so it's internals can be re-used elsewhere
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/basesgo/bases/encoding"
	"github.com/basesgo/bases/lib/buildinfo"
	"github.com/basesgo/bases/lib/exitcode"
	"github.com/basesgo/bases/lib/flags"
	"github.com/basesgo/bases/lib/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Globals
var (
	// Flags
	logOpt  = log.DefaultOptions
	verbose int
	quiet   bool
	// Errors
	errorUsage = errors.New("usage error")
)

// Root is the main bases command
var Root = &cobra.Command{
	Use:   "bases",
	Short: "Encode and decode data in arbitrary bases",
	Long: `
Bases converts between bytes and text using configurable alphabets and
three families of encoding:

  * zeropad, for base58, base36, base10 and fixed width base16 or base2
  * fixchar, for RFC 4648 base32 and base64 with or without padding
  * block, for base45

Use "bases list" to see the alphabets and encodings available.
`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	pflags := Root.PersistentFlags()
	flags.FVarP(pflags, &logOpt.Level, "log-level", "", flags.Usage("log_level", "Log level DEBUG|INFO|NOTICE|ERROR"))
	flags.FVarP(pflags, &logOpt.Format, "log-format", "", flags.Usage("log_format", "Log format text|json"))
	flags.CountVarP(pflags, &verbose, "verbose", "v", "Print lots more stuff (repeat for more)")
	flags.BoolVarP(pflags, &quiet, "quiet", "q", false, "Print as little stuff as possible")
	Root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return UsageError(err)
	})
}

// initConfig is run by cobra after initialising the flags
func initConfig(cmd *cobra.Command, args []string) error {
	if verbose > 0 && quiet {
		return UsageError(errors.New("can't set -v and -q"))
	}
	opt := logOpt
	switch {
	case verbose >= 2:
		opt.Level = log.LogLevelDebug
	case verbose == 1:
		opt.Level = log.LogLevelInfo
	case quiet:
		opt.Level = log.LogLevelError
	}
	log.Setup(opt)
	log.Debugf("bases", "Version %q starting with parameters %q", buildinfo.Version, os.Args)
	return nil
}

// UsageError marks err as caused by the command line
func UsageError(err error) error {
	return usageError{err}
}

type usageError struct {
	error
}

func (e usageError) Unwrap() error { return e.error }

func (e usageError) Is(target error) bool { return target == errorUsage }

// CheckArgs checks there are enough arguments and returns a usage
// error if not
func CheckArgs(MinArgs, MaxArgs int, cmd *cobra.Command, args []string) error {
	if len(args) < MinArgs {
		_ = cmd.Usage()
		return UsageError(errors.Errorf("command %s needs %d arguments minimum: you provided %d non flag arguments: %q", cmd.Name(), MinArgs, len(args), args))
	} else if MaxArgs >= 0 && len(args) > MaxArgs {
		_ = cmd.Usage()
		return UsageError(errors.Errorf("command %s needs %d arguments maximum: you provided %d non flag arguments: %q", cmd.Name(), MaxArgs, len(args), args))
	}
	return nil
}

// ExitCode returns the process exit status for err
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, errorUsage):
		return exitcode.UsageError
	case strings.HasPrefix(err.Error(), "unknown command"):
		return exitcode.UsageError
	case errors.Is(err, encoding.ErrBases):
		return exitcode.CodecError
	}
	return exitcode.UncategorizedError
}

// ShowVersion prints the version to w
func ShowVersion(w io.Writer) {
	linking, tagString := buildinfo.GetLinkingAndTags()
	_, _ = fmt.Fprintf(w, "bases %s\n", buildinfo.Version)
	_, _ = fmt.Fprintf(w, "- os/type: %s\n", runtime.GOOS)
	_, _ = fmt.Fprintf(w, "- os/arch: %s\n", runtime.GOARCH)
	_, _ = fmt.Fprintf(w, "- go/version: %s\n", runtime.Version())
	_, _ = fmt.Fprintf(w, "- go/linking: %s\n", linking)
	_, _ = fmt.Fprintf(w, "- go/tags: %s\n", tagString)
}

// Inputs returns args, or the lines of in if there are none
func Inputs(in io.Reader, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(nil, 16<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return lines, nil
}

// Map runs fn on every input concurrently and returns the results in
// input order. The first error cancels the rest.
func Map[In, Out any](ctx context.Context, inputs []In, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make([]Out, len(inputs))
	g, gCtx := errgroup.WithContext(ctx)
	for i := range inputs {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := fn(gCtx, inputs[i])
			if err != nil {
				return err
			}
			out[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Main runs bases interpreting flags and commands out of os.Args
func Main() {
	err := Root.Execute()
	if err != nil {
		log.Errorf(nil, "Failed: %v", err)
	}
	os.Exit(ExitCode(err))
}
