package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	wkhtml "github.com/alnah/go-wkhtml"
	"github.com/alnah/go-wkhtml/internal/fileutil"
	"github.com/gabriel-vasile/mimetype"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs    = errors.New("usage: wkhtml [flags] <input> <output>")
	ErrInvalidSetFlag = errors.New("--set expects name=value")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrReadStdin      = errors.New("failed to read stdin")
	ErrReadInput      = errors.New("failed to read input file")
)

// converter abstracts the library converter for testability.
type converter interface {
	SetOption(name string, value any) error
	SetOptions(values map[string]any) error
	SetExtraOptions(opts ...wkhtml.ExtraOption) error
	Options() *wkhtml.Registry
	Convert(ctx context.Context, input, output string, overwrite bool) error
	ConvertHTML(ctx context.Context, html, output string, overwrite bool) error
	ConvertMarkdown(ctx context.Context, markdown, output string, overwrite bool) error
}

// Compile-time interface implementation check.
var _ converter = (*wkhtml.Converter)(nil)

// newConverter builds the real library converter; tests substitute a fake.
var newConverter = func(opts ...wkhtml.Option) converter {
	return wkhtml.NewConverter(opts...)
}

// run parses arguments, merges config, builds the converter, and performs
// one conversion.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.common.version {
		fmt.Fprintf(stdout, "wkhtml %s\n", Version)
		return nil
	}

	if flags.common.initConfig != "" {
		if err := WriteDefaultConfig(flags.common.initConfig, flags.io.overwrite); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(stdout, "Wrote %s\n", flags.common.initConfig)
		}
		return nil
	}

	cfg := DefaultConfig()
	if flags.common.config != "" {
		cfg, err = LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	mergeFlags(flags, cfg)

	opts := []wkhtml.Option{wkhtml.WithBinary(cfg.Binary)}
	if cfg.Timeout != "" {
		d, parseErr := time.ParseDuration(cfg.Timeout)
		if parseErr != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, cfg.Timeout)
		}
		opts = append(opts, wkhtml.WithTimeout(d))
	}
	if cfg.OutputExtension != "" {
		opts = append(opts, wkhtml.WithOutputExtension(cfg.OutputExtension))
	}

	conv := newConverter(opts...)
	if len(cfg.Options) > 0 {
		if err := conv.SetOptions(cfg.Options); err != nil {
			return err
		}
	}
	if err := applyRendererFlags(conv, &flags.renderer); err != nil {
		return err
	}

	input, output, err := resolveIO(flags, positional, stdin)
	if err != nil {
		return err
	}

	// In stdin mode the input is literal HTML content, not a path worth echoing.
	if flags.common.verbose && !flags.io.stdin {
		printCompiledCommand(stderr, cfg.Binary, conv.Options(), input, output)
	}

	ctx := context.Background()
	switch {
	case flags.io.stdin:
		err = conv.ConvertHTML(ctx, input, output, cfg.Overwrite)
	case flags.io.markdown:
		// URLs go straight to the renderer in default mode; Markdown mode
		// needs a local file it can read.
		if fileutil.IsURL(input) {
			return fmt.Errorf("%w: %q is a URL, expected a local Markdown file", ErrReadInput, input)
		}
		content, readErr := os.ReadFile(input) // #nosec G304 -- input path is user-provided
		if readErr != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, readErr)
		}
		err = conv.ConvertMarkdown(ctx, string(content), output, cfg.Overwrite)
	default:
		err = conv.Convert(ctx, input, output, cfg.Overwrite)
	}
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(stdout, "Created %s%s\n", output, describeOutput(output))
	}
	return nil
}

// mergeFlags merges CLI flags into config (CLI wins).
func mergeFlags(flags *cliFlags, cfg *Config) {
	if flags.io.binary != "" {
		cfg.Binary = flags.io.binary
	}
	if flags.io.overwrite {
		cfg.Overwrite = true
	}
	if flags.io.timeout != "" {
		cfg.Timeout = flags.io.timeout
	}
}

// applyRendererFlags translates typed CLI flags into renderer options.
func applyRendererFlags(conv converter, f *rendererFlags) error {
	var extras []wkhtml.ExtraOption
	if f.disableGPU {
		extras = append(extras, wkhtml.DisableGPU())
	}
	if f.tocBackLinks {
		extras = append(extras, wkhtml.EnableTOCBackLinks())
	}
	if f.grayscale {
		extras = append(extras, wkhtml.Grayscale())
	}
	if f.pageSize != "" {
		extras = append(extras, wkhtml.PageSize(f.pageSize))
	}
	if f.orientation != "" {
		extras = append(extras, wkhtml.Orientation(f.orientation))
	}
	if f.dpi != 0 {
		extras = append(extras, wkhtml.DPI(f.dpi))
	}
	if f.zoom != 0 {
		extras = append(extras, wkhtml.Zoom(f.zoom))
	}
	if f.title != "" {
		extras = append(extras, wkhtml.Title(f.title))
	}
	if f.encoding != "" {
		extras = append(extras, wkhtml.Encoding(f.encoding))
	}
	if f.footerFontSize != 0 {
		extras = append(extras, wkhtml.FooterFontSize(f.footerFontSize))
	}
	if len(f.allow) > 0 {
		extras = append(extras, wkhtml.Allow(f.allow...))
	}
	if err := conv.SetExtraOptions(extras...); err != nil {
		return err
	}

	for _, pair := range f.set {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return fmt.Errorf("%w: %q", ErrInvalidSetFlag, pair)
		}
		if err := conv.SetOption(name, value); err != nil {
			return err
		}
	}
	return nil
}

// resolveIO resolves the input and output from positional args. In stdin
// mode the single positional is the output and the returned input is the
// HTML content read from stdin.
func resolveIO(flags *cliFlags, positional []string, stdin io.Reader) (input, output string, err error) {
	if flags.io.stdin {
		if len(positional) != 1 {
			return "", "", ErrInvalidArgs
		}
		content, readErr := io.ReadAll(stdin)
		if readErr != nil {
			return "", "", fmt.Errorf("%w: %v", ErrReadStdin, readErr)
		}
		return string(content), positional[0], nil
	}

	if len(positional) != 2 {
		return "", "", ErrInvalidArgs
	}
	return positional[0], positional[1], nil
}

// printCompiledCommand shows the argv the renderer will receive.
func printCompiledCommand(w io.Writer, binary string, reg *wkhtml.Registry, input, output string) {
	args, err := wkhtml.BuildArgs(reg, input, output)
	if err != nil {
		fmt.Fprintf(w, "cannot compile command: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", binary, strings.Join(args, " "))
}

// describeOutput reports the detected MIME type and size of the produced
// file, best-effort.
func describeOutput(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Sprintf(" (%d bytes)", info.Size())
	}
	return fmt.Sprintf(" (%s, %d bytes)", mt.String(), info.Size())
}
