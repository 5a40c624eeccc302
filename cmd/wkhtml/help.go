package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wkhtml [flags] <input> <output>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render an HTML document (file path or URL) to PDF or image using an")
	fmt.Fprintln(w, "external wkhtmltopdf-style binary.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -b, --binary <path>       Renderer binary (e.g. wkhtmltopdf)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --init-config <path>  Write a starter config file and exit")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing output file")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Renderer timeout (e.g. 30s, 2m)")
	fmt.Fprintln(w, "      --markdown            Treat input as a Markdown file")
	fmt.Fprintln(w, "      --stdin               Read HTML from stdin; single arg is the output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renderer options:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: A4, Letter, ...")
	fmt.Fprintln(w, "      --orientation <s>     Portrait or Landscape")
	fmt.Fprintln(w, "      --dpi <n>             Rendering resolution")
	fmt.Fprintln(w, "      --zoom <f>            Page zoom factor")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w, "      --encoding <s>        Input text encoding")
	fmt.Fprintln(w, "      --footer-font-size <n> Footer font size in points")
	fmt.Fprintln(w, "      --grayscale           Render in grayscale")
	fmt.Fprintln(w, "      --disable-gpu         Disable GPU acceleration")
	fmt.Fprintln(w, "      --toc-back-links      Link TOC entries back to sections")
	fmt.Fprintln(w, "      --allow <path>        Allow loading local files (repeatable)")
	fmt.Fprintln(w, "      --set <name=value>    Set any declared option (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show the compiled command line")
	fmt.Fprintln(w, "      --version             Show version and exit")
}
