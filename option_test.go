package wkhtml

import (
	"errors"
	"reflect"
	"testing"
)

func TestFlagOption_Compile(t *testing.T) {
	tests := []struct {
		name   string
		option *FlagOption
		want   []string
	}{
		{
			name:   "enabled toggle emits single flag token",
			option: &FlagOption{Name: "disable-gpu", Enabled: true},
			want:   []string{"--disable-gpu"},
		},
		{
			name:   "disabled toggle emits nothing",
			option: &FlagOption{Name: "disable-gpu"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.option.Compile()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if tt.option.Repeatable() {
				t.Error("toggle flags must not be repeatable")
			}
		})
	}
}

func TestValueOption_Compile(t *testing.T) {
	tests := []struct {
		name    string
		option  *ValueOption
		want    []string
		wantErr error
	}{
		{
			name:   "string value",
			option: &ValueOption{Name: "page-size", Value: "A4"},
			want:   []string{"--page-size", "A4"},
		},
		{
			name:   "int value stringified without locale",
			option: &ValueOption{Name: "dpi", Value: 300},
			want:   []string{"--dpi", "300"},
		},
		{
			name:   "float value non-lossy",
			option: &ValueOption{Name: "zoom", Value: 1.25},
			want:   []string{"--zoom", "1.25"},
		},
		{
			name:    "nil value fails",
			option:  &ValueOption{Name: "dpi"},
			wantErr: ErrInvalidOptionValue,
		},
		{
			name:    "validator rejects bad value",
			option:  &ValueOption{Name: "footer-font-size", Value: -3, Validate: positiveInt},
			wantErr: ErrInvalidOptionValue,
		},
		{
			name:    "unsupported value type fails",
			option:  &ValueOption{Name: "dpi", Value: struct{}{}},
			wantErr: ErrInvalidOptionValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.option.Compile()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRepeatOption_Compile(t *testing.T) {
	opt := &RepeatOption{Name: "allow", Values: []string{"/a", "/b", "/c"}}

	if !opt.Repeatable() {
		t.Fatal("RepeatOption must be repeatable")
	}

	got, err := opt.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"--allow", "/a", "--allow", "/b", "--allow", "/c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	empty := &RepeatOption{Name: "allow"}
	got, err = empty.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("empty value list should compile to nothing, got %v", got)
	}
}

func TestPairOption_Compile(t *testing.T) {
	opt := &PairOption{Name: "custom-header", First: "Authorization", Second: "Bearer t"}

	if !opt.Repeatable() {
		t.Fatal("PairOption must be repeatable")
	}

	got, err := opt.Compile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"--custom-header", "Authorization", "Bearer t"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	missing := &PairOption{Name: "custom-header"}
	if _, err := missing.Compile(); !errors.Is(err, ErrInvalidOptionValue) {
		t.Fatalf("expected ErrInvalidOptionValue, got %v", err)
	}
}

func TestTypedConstructors(t *testing.T) {
	tests := []struct {
		name    string
		option  ExtraOption
		want    []string
		wantErr error
	}{
		{name: "DisableGPU", option: DisableGPU(), want: []string{"--disable-gpu"}},
		{name: "EnableTOCBackLinks", option: EnableTOCBackLinks(), want: []string{"--enable-toc-back-links"}},
		{name: "Grayscale", option: Grayscale(), want: []string{"--grayscale"}},
		{name: "FooterFontSize", option: FooterFontSize(12), want: []string{"--footer-font-size", "12"}},
		{name: "FooterFontSize rejects zero", option: FooterFontSize(0), wantErr: ErrInvalidOptionValue},
		{name: "FooterFontSize rejects negative", option: FooterFontSize(-1), wantErr: ErrInvalidOptionValue},
		{name: "DPI", option: DPI(96), want: []string{"--dpi", "96"}},
		{name: "Zoom", option: Zoom(1.5), want: []string{"--zoom", "1.5"}},
		{name: "Zoom rejects zero", option: Zoom(0), wantErr: ErrInvalidOptionValue},
		{name: "Orientation", option: Orientation("Landscape"), want: []string{"--orientation", "Landscape"}},
		{name: "PageSize", option: PageSize("A4"), want: []string{"--page-size", "A4"}},
		{name: "Title", option: Title("Report"), want: []string{"--title", "Report"}},
		{name: "Encoding", option: Encoding("utf-8"), want: []string{"--encoding", "utf-8"}},
		{name: "Allow", option: Allow("/x", "/y"), want: []string{"--allow", "/x", "--allow", "/y"}},
		{name: "CustomHeader", option: CustomHeader("X-Token", "abc"), want: []string{"--custom-header", "X-Token", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.option.Compile()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "int64", value: int64(-42), want: "-42"},
		{name: "uint", value: uint(7), want: "7"},
		{name: "float32", value: float32(0.5), want: "0.5"},
		{name: "large float stays non-lossy", value: 12345.6789, want: "12345.6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatValue(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
