package wkhtml

import (
	"fmt"
	"strconv"
)

// ExtraOption is a single renderer flag that knows how to compile itself
// into command-line tokens. Compile is pure: it depends only on the
// option's stored value and never touches the filesystem or process state.
type ExtraOption interface {
	// Flag returns the canonical option name without leading dashes.
	Flag() string
	// Repeatable reports whether the flag may occur more than once in
	// the same argument sequence. Pure function of the option's identity.
	Repeatable() bool
	// Compile returns the flag plus zero or more value tokens, e.g.
	// ["--disable-gpu"] or ["--footer-font-size", "12"]. A nil slice
	// means the option is omitted entirely.
	Compile() ([]string, error)
}

// Compile-time interface implementation checks.
var (
	_ ExtraOption = (*FlagOption)(nil)
	_ ExtraOption = (*ValueOption)(nil)
	_ ExtraOption = (*RepeatOption)(nil)
	_ ExtraOption = (*PairOption)(nil)
)

// FlagOption is a no-argument toggle flag. Disabled toggles compile to
// nothing rather than failing, so a zero value is always safe to compile.
type FlagOption struct {
	Name    string
	Enabled bool
}

func (o *FlagOption) Flag() string     { return o.Name }
func (o *FlagOption) Repeatable() bool { return false }

func (o *FlagOption) Compile() ([]string, error) {
	if !o.Enabled {
		return nil, nil
	}
	return []string{"--" + o.Name}, nil
}

// ValueOption is a flag followed by exactly one value token.
// Validate, when set, is applied to the value before stringification.
type ValueOption struct {
	Name     string
	Value    any
	Validate func(value any) error
}

func (o *ValueOption) Flag() string     { return o.Name }
func (o *ValueOption) Repeatable() bool { return false }

func (o *ValueOption) Compile() ([]string, error) {
	if o.Value == nil {
		return nil, fmt.Errorf("%w: %q has no value", ErrInvalidOptionValue, o.Name)
	}
	if o.Validate != nil {
		if err := o.Validate(o.Value); err != nil {
			return nil, err
		}
	}
	token, err := formatValue(o.Value)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", o.Name, err)
	}
	return []string{"--" + o.Name, token}, nil
}

// RepeatOption is a flag repeated once per element of its value list.
// An empty list compiles to nothing.
type RepeatOption struct {
	Name   string
	Values []string
}

func (o *RepeatOption) Flag() string     { return o.Name }
func (o *RepeatOption) Repeatable() bool { return true }

func (o *RepeatOption) Compile() ([]string, error) {
	tokens := make([]string, 0, len(o.Values)*2)
	for _, v := range o.Values {
		tokens = append(tokens, "--"+o.Name, v)
	}
	return tokens, nil
}

// PairOption is a flag followed by exactly two value tokens, e.g.
// --custom-header <name> <value>. Pair flags may occur multiple times.
type PairOption struct {
	Name   string
	First  string
	Second string
}

func (o *PairOption) Flag() string     { return o.Name }
func (o *PairOption) Repeatable() bool { return true }

func (o *PairOption) Compile() ([]string, error) {
	if o.First == "" {
		return nil, fmt.Errorf("%w: %q needs a first value", ErrInvalidOptionValue, o.Name)
	}
	return []string{"--" + o.Name, o.First, o.Second}, nil
}

// formatValue converts a scalar option value to its command-line token.
// Numbers use locale-independent, non-lossy strconv formatting.
func formatValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: unsupported value type %T", ErrInvalidOptionValue, value)
	}
}

// positiveInt validates that a ValueOption value is an int greater than zero.
func positiveInt(value any) error {
	n, ok := value.(int)
	if !ok {
		return fmt.Errorf("%w: expected int, got %T", ErrInvalidOptionValue, value)
	}
	if n <= 0 {
		return fmt.Errorf("%w: must be a positive integer, got %d", ErrInvalidOptionValue, n)
	}
	return nil
}

// positiveFloat validates that a ValueOption value is a float64 greater than zero.
func positiveFloat(value any) error {
	f, ok := value.(float64)
	if !ok {
		return fmt.Errorf("%w: expected float64, got %T", ErrInvalidOptionValue, value)
	}
	if f <= 0 {
		return fmt.Errorf("%w: must be positive, got %g", ErrInvalidOptionValue, f)
	}
	return nil
}

// DisableGPU disables GPU acceleration in the renderer.
func DisableGPU() ExtraOption {
	return &FlagOption{Name: "disable-gpu", Enabled: true}
}

// EnableTOCBackLinks links table of contents entries back to their sections.
func EnableTOCBackLinks() ExtraOption {
	return &FlagOption{Name: "enable-toc-back-links", Enabled: true}
}

// Grayscale renders the document in grayscale.
func Grayscale() ExtraOption {
	return &FlagOption{Name: "grayscale", Enabled: true}
}

// FooterFontSize sets the footer font size in points. Must be positive.
func FooterFontSize(pt int) ExtraOption {
	return &ValueOption{Name: "footer-font-size", Value: pt, Validate: positiveInt}
}

// DPI sets the rendering resolution in dots per inch. Must be positive.
func DPI(n int) ExtraOption {
	return &ValueOption{Name: "dpi", Value: n, Validate: positiveInt}
}

// Zoom sets the page zoom factor. Must be positive.
func Zoom(factor float64) ExtraOption {
	return &ValueOption{Name: "zoom", Value: factor, Validate: positiveFloat}
}

// Orientation sets the page orientation ("Portrait" or "Landscape").
func Orientation(orientation string) ExtraOption {
	return &ValueOption{Name: "orientation", Value: orientation}
}

// PageSize sets the page size (e.g. "A4", "Letter").
func PageSize(size string) ExtraOption {
	return &ValueOption{Name: "page-size", Value: size}
}

// Title sets the title of the generated document.
func Title(title string) ExtraOption {
	return &ValueOption{Name: "title", Value: title}
}

// Encoding sets the default text encoding of the input.
func Encoding(encoding string) ExtraOption {
	return &ValueOption{Name: "encoding", Value: encoding}
}

// Allow permits the renderer to load local files from the given paths.
// The flag is emitted once per path.
func Allow(paths ...string) ExtraOption {
	return &RepeatOption{Name: "allow", Values: paths}
}

// CustomHeader adds an HTTP header sent with each page request. Repeated
// applications accumulate rather than replace.
func CustomHeader(name, value string) ExtraOption {
	return &PairOption{Name: "custom-header", First: name, Second: value}
}
