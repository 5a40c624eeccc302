package wkhtml

import "time"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout   time.Duration
	outputExt string
}

// defaultOutputExt is the extension used for temporary output files
// created by ConvertBytes.
const defaultOutputExt = "pdf"

// WithBinary sets the renderer binary path (e.g. "wkhtmltopdf" or an
// absolute path to wkhtmltoimage).
func WithBinary(path string) Option {
	return func(c *Converter) {
		c.binary = path
	}
}

// WithTimeout caps the runtime of the external renderer process. Zero
// means no timeout, which is the default.
// Panics if d < 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("wkhtml: WithTimeout duration must not be negative")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithRunner injects a custom CommandRunner (e.g. a scripted fake in tests).
// Panics if r is nil.
func WithRunner(r CommandRunner) Option {
	if r == nil {
		panic("wkhtml: nil CommandRunner in WithRunner")
	}
	return func(c *Converter) {
		c.runner = r
	}
}

// WithFileSystem injects a custom FileSystem (e.g. an in-memory fake in
// tests). Panics if fsys is nil.
func WithFileSystem(fsys FileSystem) Option {
	if fsys == nil {
		panic("wkhtml: nil FileSystem in WithFileSystem")
	}
	return func(c *Converter) {
		c.fs = fsys
	}
}

// WithDeclarations declares additional options beyond DefaultDeclarations,
// in input order.
func WithDeclarations(decls ...Declaration) Option {
	return func(c *Converter) {
		c.options.DeclareAll(decls)
	}
}

// WithOutputExtension sets the file extension ConvertBytes uses for its
// temporary output file. Default is "pdf"; use "png" or "jpg" when the
// binary is an image renderer.
func WithOutputExtension(ext string) Option {
	return func(c *Converter) {
		c.cfg.outputExt = ext
	}
}

// DefaultDeclarations returns the renderer options declared by every new
// Converter: the flags with typed constructors in this package plus the
// common global flags of wkhtmltopdf-style binaries. All default to
// unset, so a fresh converter compiles to a bare invocation.
func DefaultDeclarations() []Declaration {
	return []Declaration{
		{Name: "quiet"},
		{Name: "disable-gpu"},
		{Name: "grayscale"},
		{Name: "lowquality"},
		{Name: "enable-toc-back-links"},
		{Name: "disable-smart-shrinking"},
		{Name: "print-media-type"},
		{Name: "page-size"},
		{Name: "orientation"},
		{Name: "dpi"},
		{Name: "zoom"},
		{Name: "title"},
		{Name: "encoding"},
		{Name: "margin-top"},
		{Name: "margin-bottom"},
		{Name: "margin-left"},
		{Name: "margin-right"},
		{Name: "javascript-delay"},
		{Name: "footer-font-size"},
		{Name: "footer-center"},
		{Name: "header-center"},
		{Name: "allow", Repeatable: true},
		{Name: "run-script", Repeatable: true},
		{Name: "custom-header", Repeatable: true},
	}
}
