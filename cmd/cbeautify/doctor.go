package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	cbeautify "github.com/alnah/go-cbeautify"
	"github.com/alnah/go-cbeautify/internal/config"
	"github.com/alnah/go-cbeautify/internal/fileutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Input    inputInfo  `json:"input"`
	Output   outputInfo `json:"output"`
	Style    styleInfo  `json:"style"`
	Assets   assetInfo  `json:"assets"`
	Env      envInfo    `json:"environment"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// inputInfo holds input directory checks.
type inputInfo struct {
	Dir   string `json:"dir"`
	Found bool   `json:"found"`
	Pages int    `json:"pages"`
}

// outputInfo holds output directory checks.
type outputInfo struct {
	Dir      string `json:"dir"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
}

// styleInfo holds highlight style checks.
type styleInfo struct {
	Name  string `json:"name"`
	Known bool   `json:"known"`
}

// assetInfo holds custom asset directory checks.
type assetInfo struct {
	Path  string `json:"path,omitempty"`
	Valid bool   `json:"valid"`
}

// envInfo holds runtime environment details.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	GOMAXPROCS int    `json:"gomaxprocs"`
	Workers    int    `json:"workers"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printDoctorUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v: %v\n", ErrInvalidFlags, err)
		return ExitUsage
	}

	result := runDoctor(flags, env.Stderr)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(flags *doctorFlags, stderr io.Writer) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			GOMAXPROCS: runtime.GOMAXPROCS(0),
		},
	}

	cfg, err := loadRunConfig(flags.config, stderr)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		cfg = config.DefaultConfig()
	}
	mergeDoctorFlags(flags, cfg)
	result.Env.Workers = resolvePoolSize(cfg.Workers)

	checkInput(result, cfg)
	checkOutput(result, cfg)
	checkStyle(result, cfg)
	checkAssets(result, cfg)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// mergeDoctorFlags applies doctor flags over config.
func mergeDoctorFlags(flags *doctorFlags, cfg *config.Config) {
	if flags.input != "" {
		cfg.Input.Dir = flags.input
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.style != "" {
		cfg.Highlight.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
}

// checkInput verifies the input directory exists and holds pages.
func checkInput(result *doctorResult, cfg *config.Config) {
	result.Input.Dir = cfg.Input.Dir
	if !fileutil.DirExists(cfg.Input.Dir) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Input directory not found: %s (generate the HTML manual with makeinfo first)", cfg.Input.Dir))
		return
	}
	result.Input.Found = true

	pages, err := discoverPages(cfg.Input.Dir, cfg.Output.Dir)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Scanning input: %v", err))
		return
	}
	result.Input.Pages = len(pages)
	if len(pages) == 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("No HTML pages in %s", cfg.Input.Dir))
	}
}

// checkOutput verifies the output directory, or its nearest existing
// parent, accepts new files.
func checkOutput(result *doctorResult, cfg *config.Config) {
	result.Output.Dir = cfg.Output.Dir
	result.Output.Exists = fileutil.DirExists(cfg.Output.Dir)

	dir := nearestExistingDir(cfg.Output.Dir)
	tmp, err := os.CreateTemp(dir, ".cbeautify-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s", cfg.Output.Dir))
		return
	}
	_ = tmp.Close()
	_ = os.Remove(tmp.Name())
	result.Output.Writable = true

	if !result.Output.Exists {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Output directory %s does not exist yet and will be created", cfg.Output.Dir))
	}
}

// nearestExistingDir walks up from dir to the first directory that exists.
func nearestExistingDir(dir string) string {
	for {
		if fileutil.DirExists(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

// checkStyle verifies the highlight style is known.
func checkStyle(result *doctorResult, cfg *config.Config) {
	result.Style.Name = cfg.Highlight.Style
	if _, err := cbeautify.HighlightCSS(cfg.Highlight.Style, cfg.Highlight.Selector); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Unknown highlight style %q (available: %s)",
				cfg.Highlight.Style, strings.Join(cbeautify.HighlightStyles(), ", ")))
		return
	}
	result.Style.Known = true
}

// checkAssets verifies the custom asset directory, when one is set.
func checkAssets(result *doctorResult, cfg *config.Config) {
	result.Assets.Path = cfg.Assets.BasePath
	if _, err := cbeautify.NewAssetLoader(cfg.Assets.BasePath); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Asset path invalid: %s (%v)", cfg.Assets.BasePath, err))
		return
	}
	result.Assets.Valid = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "cbeautify doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Input")
	if r.Input.Found {
		fmt.Fprintf(w, "  [OK] Directory: %s\n", r.Input.Dir)
		fmt.Fprintf(w, "  [OK] Pages: %d\n", r.Input.Pages)
	} else {
		fmt.Fprintf(w, "  [ERROR] Directory not found: %s\n", r.Input.Dir)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	if r.Output.Writable {
		fmt.Fprintf(w, "  [OK] Directory: %s (writable)\n", r.Output.Dir)
	} else {
		fmt.Fprintf(w, "  [ERROR] Directory not writable: %s\n", r.Output.Dir)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Styling")
	if r.Style.Known {
		fmt.Fprintf(w, "  [OK] Highlight style: %s\n", r.Style.Name)
	} else {
		fmt.Fprintf(w, "  [ERROR] Highlight style unknown: %s\n", r.Style.Name)
	}
	switch {
	case r.Assets.Path == "":
		fmt.Fprintln(w, "  [OK] Assets: embedded")
	case r.Assets.Valid:
		fmt.Fprintf(w, "  [OK] Assets: %s\n", r.Assets.Path)
	default:
		fmt.Fprintf(w, "  [ERROR] Assets: %s\n", r.Assets.Path)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintf(w, "  [OK] GOMAXPROCS: %d, workers: %d\n", r.Env.GOMAXPROCS, r.Env.Workers)
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to beautify")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
