// Package wkhtml drives external HTML-to-PDF/image renderer binaries
// (wkhtmltopdf, wkhtmltoimage, and compatible tools) from structured
// options instead of hand-built command lines.
//
// # Quick Start
//
// Create a converter, point it at a binary, and convert:
//
//	conv := wkhtml.NewConverter(wkhtml.WithBinary("wkhtmltopdf"))
//	err := conv.Convert(ctx, "report.html", "report.pdf", false)
//
// Options are declared up front and set by name:
//
//	err := conv.SetOptions(map[string]any{
//	    "page-size":   "A4",
//	    "grayscale":   true,
//	    "disable-gpu": true,
//	})
//
// or through typed constructors:
//
//	err := conv.SetExtraOptions(
//	    wkhtml.DisableGPU(),
//	    wkhtml.FooterFontSize(9),
//	    wkhtml.Allow("/srv/assets"),
//	)
//
// Setting an undeclared name fails with ErrUnknownOption; declare custom
// options via WithDeclarations or conv.Options().
//
// # Call Shapes
//
// Convert renders a file path or URL to an output path. ConvertBytes
// renders into a temporary file and returns its bytes. ConvertHTML and
// ConvertMarkdown stage literal content into a temporary input file that
// is removed when the call returns, success or failure.
//
// # Command Assembly
//
// Options compile to a flat argument vector (one token per flag or
// value) that is handed to process creation directly, with no shell in
// between. Values containing quotes or shell metacharacters are passed
// through verbatim and cannot be reinterpreted.
//
// # Verification
//
// The renderer's exit code is not trusted: a conversion succeeds only if
// the output file exists and is non-empty afterwards. Exit code and
// captured stderr are surfaced in verification error messages.
//
// # Concurrency
//
// A Converter is mutable configuration plus stateless per-call logic.
// It is not safe for concurrent use; use one Converter per goroutine or
// synchronize option mutation with conversion externally.
package wkhtml
