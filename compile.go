package wkhtml

import (
	"fmt"
	"strings"
)

// BuildArgs compiles the registry into a flat argument token slice: one
// flag (plus value tokens) per declared option in declaration order,
// followed by the input token and the output token. The binary name is
// not included.
//
// The result is passed to process creation as discrete arguments and is
// never joined into a shell string, so values containing quotes,
// semicolons, or other shell metacharacters stay inert.
func BuildArgs(reg *Registry, input, output string) ([]string, error) {
	args := make([]string, 0, len(reg.Names())*2+2)

	for _, name := range reg.Names() {
		value, _ := reg.Get(name)
		tokens, err := compileEntry(name, value, reg.IsRepeatable(name))
		if err != nil {
			return nil, err
		}
		args = append(args, tokens...)
	}

	return append(args, input, output), nil
}

// compileEntry turns one registry entry into its command-line tokens.
//
//   - nil or false: omitted entirely
//   - true: one token, "--name"
//   - list of groups ([][]string): "--name" plus the group's tokens per
//     group; only legal for repeatable options
//   - list: "--name elem" per element; only legal for repeatable options
//   - any other scalar: "--name value"
func compileEntry(name string, value any, repeatable bool) ([]string, error) {
	if value == nil {
		return nil, nil
	}

	if enabled, ok := value.(bool); ok {
		if !enabled {
			return nil, nil
		}
		return []string{"--" + name}, nil
	}

	if groups, ok := value.([][]string); ok {
		if !repeatable {
			return nil, fmt.Errorf("%w: %q is not repeatable but was given value groups", ErrInvalidOptionValue, name)
		}
		tokens := make([]string, 0, len(groups)*3)
		for _, group := range groups {
			tokens = append(tokens, "--"+name)
			tokens = append(tokens, group...)
		}
		return tokens, nil
	}

	if elems, ok, err := listElements(value); ok {
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", name, err)
		}
		if !repeatable {
			return nil, fmt.Errorf("%w: %q is not repeatable but was given a list", ErrInvalidOptionValue, name)
		}
		tokens := make([]string, 0, len(elems)*2)
		for _, elem := range elems {
			tokens = append(tokens, "--"+name, elem)
		}
		return tokens, nil
	}

	token, err := formatValue(value)
	if err != nil {
		return nil, fmt.Errorf("option %q: %w", name, err)
	}
	return []string{"--" + name, token}, nil
}

// listElements reports whether value is a list and, if so, returns its
// elements stringified. Supported list shapes: []string, []int, []any.
func listElements(value any) ([]string, bool, error) {
	switch v := value.(type) {
	case []string:
		return v, true, nil
	case []int:
		elems := make([]string, len(v))
		for i, n := range v {
			s, err := formatValue(n)
			if err != nil {
				return nil, true, err
			}
			elems[i] = s
		}
		return elems, true, nil
	case []any:
		elems := make([]string, len(v))
		for i, e := range v {
			s, err := formatValue(e)
			if err != nil {
				return nil, true, err
			}
			elems[i] = s
		}
		return elems, true, nil
	default:
		return nil, false, nil
	}
}

// ParseCompiled re-parses a compiled flag token stream back into a
// name-to-values mapping. Tokens before the first flag are rejected;
// flag occurrences accumulate their values in input order. Value-bearing
// options round-trip through Compile and ParseCompiled unchanged.
func ParseCompiled(tokens []string) (map[string][]string, error) {
	parsed := make(map[string][]string)
	current := ""

	for _, token := range tokens {
		if name, ok := strings.CutPrefix(token, "--"); ok && name != "" {
			current = name
			if _, seen := parsed[current]; !seen {
				parsed[current] = nil
			}
			continue
		}
		if current == "" {
			return nil, fmt.Errorf("%w: value token %q before any flag", ErrInvalidOptionValue, token)
		}
		parsed[current] = append(parsed[current], token)
	}

	return parsed, nil
}
