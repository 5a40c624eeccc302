package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags unrelated to the renderer invocation itself.
type commonFlags struct {
	config     string
	initConfig string
	quiet      bool
	verbose    bool
	version    bool
}

// ioFlags holds input/output behavior flags.
type ioFlags struct {
	binary    string
	overwrite bool
	timeout   string
	markdown  bool
	stdin     bool
}

// rendererFlags holds flags forwarded to the renderer binary as options.
type rendererFlags struct {
	pageSize       string
	orientation    string
	dpi            int
	zoom           float64
	title          string
	encoding       string
	footerFontSize int
	grayscale      bool
	disableGPU     bool
	tocBackLinks   bool
	allow          []string
	set            []string // generic name=value pairs
}

// cliFlags holds all flags for the wkhtml command.
type cliFlags struct {
	common   commonFlags
	io       ioFlags
	renderer rendererFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.initConfig, "init-config", "", "write a starter config file and exit")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show the compiled command line")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
}

// addIOFlags adds input/output flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.binary, "binary", "b", "", "renderer binary path (e.g. wkhtmltopdf)")
	fs.BoolVarP(&f.overwrite, "force", "f", false, "overwrite an existing output file")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "renderer timeout (e.g. 30s, 2m; empty = none)")
	fs.BoolVar(&f.markdown, "markdown", false, "treat input as a Markdown file")
	fs.BoolVar(&f.stdin, "stdin", false, "read HTML content from stdin (no input argument)")
}

// addRendererFlags adds renderer option flags to a FlagSet.
func addRendererFlags(fs *flag.FlagSet, f *rendererFlags) {
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size (e.g. A4, Letter)")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: Portrait, Landscape")
	fs.IntVar(&f.dpi, "dpi", 0, "rendering resolution in dots per inch")
	fs.Float64Var(&f.zoom, "zoom", 0, "page zoom factor")
	fs.StringVar(&f.title, "title", "", "title of the generated document")
	fs.StringVar(&f.encoding, "encoding", "", "default text encoding of the input")
	fs.IntVar(&f.footerFontSize, "footer-font-size", 0, "footer font size in points")
	fs.BoolVar(&f.grayscale, "grayscale", false, "render in grayscale")
	fs.BoolVar(&f.disableGPU, "disable-gpu", false, "disable GPU acceleration")
	fs.BoolVar(&f.tocBackLinks, "toc-back-links", false, "link TOC entries back to their sections")
	fs.StringArrayVar(&f.allow, "allow", nil, "allow loading local files from path (repeatable)")
	fs.StringArrayVar(&f.set, "set", nil, "set any declared renderer option as name=value (repeatable)")
}

// parseFlags parses all flags and returns the remaining positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("wkhtml", flag.ContinueOnError)
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addIOFlags(fs, &f.io)
	addRendererFlags(fs, &f.renderer)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
