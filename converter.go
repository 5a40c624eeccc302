package wkhtml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Converter drives one conversion end-to-end: it owns the renderer binary
// path and option registry, validates the output path, compiles the
// command, executes it, and verifies the produced file.
//
// A Converter may be reused across sequential conversions; binary path
// and options are mutable configuration. It is not safe for concurrent
// use: callers mixing SetOption and Convert across goroutines must use
// one Converter per goroutine or synchronize externally.
type Converter struct {
	cfg     converterConfig
	binary  string
	options *Registry
	runner  CommandRunner
	fs      FileSystem
	md      *goldmarkRenderer
}

// NewConverter creates a Converter with the default option declarations,
// a real process runner, and the OS filesystem. Use options to customize
// behavior (e.g. WithBinary, WithTimeout, WithRunner).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg:     converterConfig{outputExt: defaultOutputExt},
		options: NewRegistry(),
		runner:  &ExecRunner{},
		fs:      OSFileSystem{},
		md:      newGoldmarkRenderer(),
	}
	c.options.DeclareAll(DefaultDeclarations())

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetBinaryPath sets the renderer binary invoked by conversions.
func (c *Converter) SetBinaryPath(path string) {
	c.binary = path
}

// SetOption assigns a value to a declared option. A nil value unsets it.
// Fails with ErrUnknownOption for undeclared names.
func (c *Converter) SetOption(name string, value any) error {
	return c.options.Set(name, value)
}

// SetOptions applies SetOption for each entry in sorted key order.
// Not atomic: entries applied before a failing entry remain applied.
func (c *Converter) SetOptions(values map[string]any) error {
	return c.options.SetAll(values)
}

// SetExtraOptions applies typed extra options. Each option is compiled
// first so invalid values are rejected before any registry mutation for
// that option.
func (c *Converter) SetExtraOptions(opts ...ExtraOption) error {
	for _, opt := range opts {
		if _, err := opt.Compile(); err != nil {
			return err
		}
		var value any
		switch o := opt.(type) {
		case *FlagOption:
			value = o.Enabled
		case *ValueOption:
			value = o.Value
		case *RepeatOption:
			value = o.Values
		case *PairOption:
			// Pair flags accumulate: each application adds one occurrence.
			existing, _ := c.options.Get(o.Flag())
			groups, _ := existing.([][]string)
			value = append(groups, []string{o.First, o.Second})
		default:
			return fmt.Errorf("%w: unsupported extra option type %T", ErrInvalidOptionValue, opt)
		}
		if err := c.options.Set(opt.Flag(), value); err != nil {
			return err
		}
	}
	return nil
}

// Options exposes the converter's option registry, e.g. to declare
// custom options after construction.
func (c *Converter) Options() *Registry {
	return c.options
}

// Convert renders the input document (a file path or URL) to the output
// path. With overwrite false, a pre-existing output file aborts the call
// before the renderer is invoked.
func (c *Converter) Convert(ctx context.Context, input, output string, overwrite bool) error {
	if input == "" {
		return ErrEmptyInput
	}
	if c.binary == "" {
		return ErrMissingBinary
	}

	if err := c.prepareOutput(output, overwrite); err != nil {
		return err
	}

	args, err := BuildArgs(c.options, input, output)
	if err != nil {
		return err
	}

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	res, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return err
	}

	return c.verifyOutput(output, res)
}

// ConvertBytes renders the input document (a file path or URL) into a
// temporary file and returns its bytes. The temporary file is removed
// before returning, success or failure.
func (c *Converter) ConvertBytes(ctx context.Context, input string) ([]byte, error) {
	tmpPath, cleanup, err := c.fs.WriteTemp("", c.cfg.outputExt)
	if err != nil {
		return nil, fmt.Errorf("staging temp output: %w", err)
	}
	defer cleanup()

	// The freshly created temp file is empty, so overwrite must be allowed.
	if err := c.Convert(ctx, input, tmpPath, true); err != nil {
		return nil, err
	}

	data, err := c.fs.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("reading converted output: %w", err)
	}
	return data, nil
}

// ConvertHTML stages literal HTML content into a temporary input file and
// renders it to the output path. The temporary file is removed when the
// call returns, success or failure.
func (c *Converter) ConvertHTML(ctx context.Context, html, output string, overwrite bool) error {
	if html == "" {
		return ErrEmptyHTML
	}

	tmpPath, cleanup, err := c.fs.WriteTemp(html, "html")
	if err != nil {
		return fmt.Errorf("staging HTML input: %w", err)
	}
	defer cleanup()

	return c.Convert(ctx, tmpPath, output, overwrite)
}

// ConvertMarkdown renders Markdown content to a standalone HTML5 document
// and converts it like ConvertHTML.
func (c *Converter) ConvertMarkdown(ctx context.Context, markdown, output string, overwrite bool) error {
	if markdown == "" {
		return ErrEmptyMarkdown
	}

	html, err := c.md.Render(ctx, markdown)
	if err != nil {
		return err
	}

	return c.ConvertHTML(ctx, html, output, overwrite)
}

// prepareOutput validates the output path before the renderer runs.
// The output must not exist, or exist as a plain file the caller allowed
// to be overwritten; a missing parent directory is created.
func (c *Converter) prepareOutput(output string, overwrite bool) error {
	info, err := c.fs.Lstat(output)
	switch {
	case err == nil:
		if info.Mode()&fs.ModeSymlink != 0 {
			return fmt.Errorf("%w: %q is a symbolic link", ErrInvalidOutputPath, output)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %q is a directory", ErrInvalidOutputPath, output)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %q is not a regular file", ErrInvalidOutputPath, output)
		}
		if !overwrite {
			return fmt.Errorf("%w: %q", ErrOutputExists, output)
		}
		if rmErr := c.fs.Remove(output); rmErr != nil {
			return fmt.Errorf("%w: %q: %v", ErrOutputCleanup, output, rmErr)
		}
	case errors.Is(err, fs.ErrNotExist):
		// New file; ensure the parent directory exists below.
	default:
		return fmt.Errorf("%w: %q: %v", ErrInvalidOutputPath, output, err)
	}

	dir := filepath.Dir(output)
	if dir != "." && dir != string(filepath.Separator) {
		switch _, statErr := c.fs.Stat(dir); {
		case statErr == nil:
		case errors.Is(statErr, fs.ErrNotExist):
			if mkErr := c.fs.MkdirAll(dir, 0o755); mkErr != nil {
				return fmt.Errorf("%w: %q: %v", ErrOutputDirCreate, dir, mkErr)
			}
		default:
			// Unreadable parent, e.g. permissions.
			return fmt.Errorf("%w: %q: %v", ErrOutputDirCreate, dir, statErr)
		}
	}

	return nil
}

// verifyOutput checks the produced file after the renderer returned.
// The renderer's exit code is not a failure condition on its own, but it
// is surfaced in the error message together with captured stderr.
func (c *Converter) verifyOutput(output string, res RunResult) error {
	info, err := c.fs.Stat(output)
	if err != nil {
		return fmt.Errorf("%w: %q%s", ErrOutputNotCreated, output, diagnostics(res))
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: %q%s", ErrOutputEmpty, output, diagnostics(res))
	}
	return nil
}

// diagnostics formats run diagnostics for verification error messages.
func diagnostics(res RunResult) string {
	msg := fmt.Sprintf(" (exit code %d", res.ExitCode)
	if s := strings.TrimSpace(res.Stderr); s != "" {
		msg += ": " + s
	}
	return msg + ")"
}
