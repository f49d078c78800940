package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	configureMaxProcs(hasVerboseFlag(os.Args[1:]), os.Stderr)
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota, logging
// to w in verbose mode.
// Error ignored: maxprocs.Set only fails if the GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply.
func configureMaxProcs(verbose bool, w io.Writer) {
	logf := func(string, ...interface{}) {}
	if verbose {
		logf = func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}

// isCommand reports whether arg names a subcommand rather than a flag or input.
func isCommand(arg string) bool {
	switch arg {
	case "help", "version", "doctor", "completion":
		return true
	}
	return false
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 1 && isCommand(args[1]) {
		switch args[1] {
		case "help":
			return runHelp(args[2:], env)
		case "version":
			fmt.Fprintf(env.Stdout, "cbeautify %s\n", Version)
			return ExitSuccess
		case "doctor":
			return runDoctorCmd(args[2:], env)
		case "completion":
			if err := runCompletion(args[2:], env); err != nil {
				fmt.Fprintf(env.Stderr, "error: %v\n", err)
				return exitCodeFor(err)
			}
			return ExitSuccess
		}
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := runBeautify(ctx, rest, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
