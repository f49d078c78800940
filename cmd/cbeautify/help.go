package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cbeautify [--html] [--css] [flags] [input]")
	fmt.Fprintln(w, "       cbeautify <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Beautify the HTML pages of the GNU C manual generated by makeinfo.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor     Check input, output, style and assets")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Mode (at least one):")
	fmt.Fprintln(w, "      --html                Rewrite pages and bundle styles.css, highlights.css, favicon.svg")
	fmt.Fprintln(w, "      --css                 Write highlights.css into the CSS directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <dir>         Generated pages (default: gnu-c-manual/c.html.d)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: docs; same as input = in place)")
	fmt.Fprintln(w, "      --css-dir <dir>       Target of --css (default: css)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>        Highlight colour style (default: pygments)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/, templates/ and icons/")
	fmt.Fprintln(w, "      --no-highlight        Disable code highlighting")
	fmt.Fprintln(w, "      --no-navbar           Disable navigation bar rewriting")
	fmt.Fprintln(w, "      --no-icon             Disable favicon")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             List skipped features and timings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cbeautify help <command>' for details on a specific command.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cbeautify doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that the input directory holds pages, the output directory is")
	fmt.Fprintln(w, "writable, the highlight style exists and the asset path is valid.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Machine-readable output")
	fmt.Fprintln(w, "  -i, --input <dir>         Generated pages")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --style <name>        Highlight colour style")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cbeautify version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cbeautify help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
