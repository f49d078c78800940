package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// modeFlags selects which outputs a run produces.
type modeFlags struct {
	html bool // Rewrite pages into the output directory
	css  bool // Write highlights.css into the CSS directory
}

// pathFlags holds input and output locations.
type pathFlags struct {
	input  string
	output string
	cssDir string
}

// assetFlags holds styling and asset flags.
type assetFlags struct {
	style     string // chroma style for highlights.css
	assetPath string // Override asset directory
}

// featureFlags turns individual enhancements off.
type featureFlags struct {
	noHighlight bool
	noNavbar    bool
	noIcon      bool
}

// beautifyFlags holds all flags for a beautify run.
type beautifyFlags struct {
	common   commonFlags
	mode     modeFlags
	paths    pathFlags
	assets   assetFlags
	features featureFlags
	workers  int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "list skipped features and timings")
}

// addModeFlags adds mode flags to a FlagSet.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.BoolVar(&f.html, "html", false, "rewrite HTML pages")
	fs.BoolVar(&f.css, "css", false, "write highlights.css")
}

// addPathFlags adds input/output flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.input, "input", "i", "", "directory of generated HTML pages")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (same as input = in place)")
	fs.StringVar(&f.cssDir, "css-dir", "", "directory receiving highlights.css")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "highlight colour style name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addFeatureFlags adds the feature toggles to a FlagSet.
func addFeatureFlags(fs *flag.FlagSet, f *featureFlags) {
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable code highlighting")
	fs.BoolVar(&f.noNavbar, "no-navbar", false, "disable navigation bar rewriting")
	fs.BoolVar(&f.noIcon, "no-icon", false, "disable favicon")
}

// newBeautifyFlagSet registers every beautify flag into a new FlagSet.
// Shared by parsing and shell completion.
func newBeautifyFlagSet(f *beautifyFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("cbeautify", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addModeFlags(fs, &f.mode)
	addPathFlags(fs, &f.paths)
	addAssetFlags(fs, &f.assets)
	addFeatureFlags(fs, &f.features)

	return fs
}

// parseBeautifyFlags parses beautify flags and returns positional args.
// Returns flag.ErrHelp when -h or --help is given.
func parseBeautifyFlags(args []string) (*beautifyFlags, []string, error) {
	f := &beautifyFlags{}
	fs := newBeautifyFlagSet(f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json      bool
	config    string
	input     string
	output    string
	style     string
	assetPath string
}

func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&f.json, "json", false, "machine-readable output")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.input, "input", "i", "", "directory of generated HTML pages")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.style, "style", "", "highlight colour style name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")

	return fs
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string) (*doctorFlags, error) {
	f := &doctorFlags{}
	if err := newDoctorFlagSet(f).Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
