package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	cbeautify "github.com/alnah/go-cbeautify"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

var supportedShells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob []string // for file flags, extensions without the dot
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
}

// completionMeta holds completion hints the FlagSet cannot express.
type completionMeta struct {
	Values   func() []string
	FileGlob []string
	IsDir    bool
}

var flagCompletionMeta = map[string]completionMeta{
	"style":      {Values: cbeautify.HighlightStyles},
	"config":     {FileGlob: []string{"yaml", "yml"}},
	"input":      {IsDir: true},
	"output":     {IsDir: true},
	"css-dir":    {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet converts a FlagSet into completion definitions.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case len(meta.FileGlob) > 0:
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// rootFlags returns the flags of a plain beautify run.
func rootFlags() []flagDef {
	return extractFlagsFromFlagSet(newBeautifyFlagSet(&beautifyFlags{}))
}

func doctorCompletionFlags() []flagDef {
	return extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{}))
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "doctor", Desc: "Check input, output, style and assets", Flags: doctorCompletionFlags()},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

func commandNames() []string {
	cmds := getCommands()
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// GenerateCompletion writes a shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(supportedShells, ", "))
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cbeautify completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(cbeautify completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(cbeautify completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    cbeautify completion fish > ~/.config/fish/completions/cbeautify.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    cbeautify completion powershell | Out-String | Invoke-Expression")
}

// flagWords returns every spelling of the given flags, long first.
func flagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// valueFlags groups flags taking a value by completion type.
// Both flag sets are merged: a flag name means the same thing everywhere.
func valueFlags() map[flagType][]flagDef {
	seen := make(map[string]bool)
	groups := make(map[flagType][]flagDef)
	for _, f := range append(rootFlags(), doctorCompletionFlags()...) {
		if seen[f.Long] || f.Type == flagBool {
			continue
		}
		seen[f.Long] = true
		groups[f.Type] = append(groups[f.Type], f)
	}
	return groups
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(w io.Writer) error {
	var b strings.Builder
	groups := valueFlags()

	b.WriteString("# bash completion for cbeautify\n\n")
	b.WriteString("_cbeautify_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")

	b.WriteString("    case \"$prev\" in\n")
	for _, f := range groups[flagEnum] {
		fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n            return ;;\n",
			strings.Join(flagWords([]flagDef{f}), "|"), strings.Join(f.Values, " "))
	}
	for _, f := range groups[flagFile] {
		fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -f -X '!*.@(%s)' -- \"$cur\") )\n            return ;;\n",
			strings.Join(flagWords([]flagDef{f}), "|"), strings.Join(f.FileGlob, "|"))
	}
	if dirs := groups[flagDir]; len(dirs) > 0 {
		fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -d -- \"$cur\") )\n            return ;;\n",
			strings.Join(flagWords(dirs), "|"))
	}
	if other := append(groups[flagInt], groups[flagString]...); len(other) > 0 {
		fmt.Fprintf(&b, "        %s)\n            return ;;\n", strings.Join(flagWords(other), "|"))
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range getCommands() {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		switch c.Name {
		case "help":
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") ) ;;\n", strings.Join(commandNames(), " "))
		case "completion":
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") ) ;;\n", strings.Join(supportedShells, " "))
		default:
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") ) ;;\n", strings.Join(flagWords(c.Flags), " "))
		}
	}
	b.WriteString("        *)\n")
	b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(&b, "                COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(flagWords(rootFlags()), " "))
	b.WriteString("            elif [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "                COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") $(compgen -d -- \"$cur\") )\n", strings.Join(commandNames(), " "))
	b.WriteString("            else\n")
	b.WriteString("                COMPREPLY=( $(compgen -d -- \"$cur\") )\n")
	b.WriteString("            fi ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _cbeautify_completions cbeautify\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

var zshEscaper = strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)

// zshArgument renders one _arguments entry per spelling of f.
func zshArgument(f flagDef) []string {
	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":%s:_files -g \"*.(%s)\"", f.Long, strings.Join(f.FileGlob, "|"))
	case flagDir:
		action = fmt.Sprintf(":%s:_files -/", f.Long)
	default:
		action = fmt.Sprintf(":%s: ", f.Long)
	}

	desc := zshEscaper.Replace(f.Desc)
	args := []string{fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)}
	if f.Short != "" {
		args = append(args, fmt.Sprintf("'-%s[%s]%s'", f.Short, desc, action))
	}
	return args
}

func writeZshArguments(b *strings.Builder, indent string, flags []flagDef, extra string) {
	b.WriteString(indent + "_arguments -s \\\n")
	for _, f := range flags {
		for _, arg := range zshArgument(f) {
			fmt.Fprintf(b, "%s    %s \\\n", indent, arg)
		}
	}
	fmt.Fprintf(b, "%s    %s\n", indent, extra)
}

func generateZsh(w io.Writer) error {
	var b strings.Builder

	b.WriteString("#compdef cbeautify\n\n")
	b.WriteString("_cbeautify() {\n")
	b.WriteString("    local -a commands shells\n")
	b.WriteString("    commands=(\n")
	for _, c := range getCommands() {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscaper.Replace(c.Desc))
	}
	b.WriteString("    )\n")
	fmt.Fprintf(&b, "    shells=(%s)\n\n", strings.Join(supportedShells, " "))

	b.WriteString("    if (( CURRENT == 2 )) && [[ $words[2] != -* ]]; then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        _files -/\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case $words[2] in\n")
	for _, c := range getCommands() {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		switch c.Name {
		case "help":
			b.WriteString("            _describe 'command' commands ;;\n")
		case "completion":
			b.WriteString("            _describe 'shell' shells ;;\n")
		case "version":
			b.WriteString("            ;;\n")
		default:
			writeZshArguments(&b, "            ", c.Flags, "&& return")
			b.WriteString("            ;;\n")
		}
	}
	b.WriteString("        *)\n")
	writeZshArguments(&b, "            ", rootFlags(), "'::input directory:_files -/'")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _cbeautify cbeautify\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

var fishEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func writeFishFlag(b *strings.Builder, cond string, f flagDef) {
	fmt.Fprintf(b, "complete -c cbeautify -n '%s' -l %s", cond, f.Long)
	if f.Short != "" {
		fmt.Fprintf(b, " -s %s", f.Short)
	}
	fmt.Fprintf(b, " -d '%s'", fishEscaper.Replace(f.Desc))

	switch f.Type {
	case flagBool:
	case flagEnum:
		fmt.Fprintf(b, " -x -a '%s'", strings.Join(f.Values, " "))
	case flagFile:
		b.WriteString(" -r -F")
	case flagDir:
		b.WriteString(" -x -a '(__fish_complete_directories)'")
	default:
		b.WriteString(" -x")
	}
	b.WriteString("\n")
}

func generateFish(w io.Writer) error {
	var b strings.Builder
	names := strings.Join(commandNames(), " ")

	b.WriteString("# fish completion for cbeautify\n\n")
	b.WriteString("function __fish_cbeautify_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_cbeautify_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c cbeautify -f\n\n")

	for _, c := range getCommands() {
		fmt.Fprintf(&b, "complete -c cbeautify -n __fish_cbeautify_needs_command -a %s -d '%s'\n", c.Name, fishEscaper.Replace(c.Desc))
	}
	b.WriteString("\n")

	rootCond := "not __fish_seen_subcommand_from " + names
	for _, f := range rootFlags() {
		writeFishFlag(&b, rootCond, f)
	}
	b.WriteString("\n")

	for _, c := range getCommands() {
		cond := "__fish_cbeautify_using_command " + c.Name
		switch c.Name {
		case "help":
			fmt.Fprintf(&b, "complete -c cbeautify -n '%s' -a '%s'\n", cond, names)
		case "completion":
			fmt.Fprintf(&b, "complete -c cbeautify -n '%s' -a '%s'\n", cond, strings.Join(supportedShells, " "))
		default:
			for _, f := range c.Flags {
				writeFishFlag(&b, cond, f)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func psList(words []string) string {
	quoted := make([]string, len(words))
	for i, word := range words {
		quoted[i] = "'" + strings.ReplaceAll(word, "'", "''") + "'"
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

func generatePowerShell(w io.Writer) error {
	var b strings.Builder

	b.WriteString("# PowerShell completion for cbeautify\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName cbeautify -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $command = if ($elements.Count -gt 1) { $elements[1] } else { '' }\n\n")
	b.WriteString("    $candidates = switch ($command) {\n")
	for _, c := range getCommands() {
		var words []string
		switch c.Name {
		case "help":
			words = commandNames()
		case "completion":
			words = supportedShells
		default:
			words = flagWords(c.Flags)
		}
		fmt.Fprintf(&b, "        '%s' { %s }\n", c.Name, psList(words))
	}
	fmt.Fprintf(&b, "        default { %s }\n", psList(append(commandNames(), flagWords(rootFlags())...)))
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
