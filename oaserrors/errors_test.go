package oaserrors

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:    "api.yaml",
			Line:    3,
			Column:  9,
			Message: "failed to parse YAML/JSON",
			Cause:   errors.New("did not find expected node content"),
		}
		want := "parse error in api.yaml at line 3, column 9: failed to parse YAML/JSON: did not find expected node content"
		if got := err.Error(); got != want {
			t.Errorf("unexpected error message: %s", got)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Column without line is omitted", func(t *testing.T) {
		err := &ParseError{Column: 4, Message: "document is empty"}
		if err.Error() != "parse error: document is empty" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		err := &ParseError{Cause: io.ErrUnexpectedEOF}
		if !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Error("errors.Is should reach the cause")
		}
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ParseError{})
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrConfig) || errors.Is(err, ErrUnsupportedVersion) {
			t.Error("ParseError should not match other sentinels")
		}
	})
}

func TestUnsupportedVersionError(t *testing.T) {
	tests := []struct {
		name string
		err  *UnsupportedVersionError
		want string
	}{
		{
			name: "all fields",
			err:  &UnsupportedVersionError{Path: "legacy.yaml", Version: "2.0", Field: "swagger", Line: 1, Column: 10},
			want: "unsupported version 2.0 in legacy.yaml at line 1, column 10: only OpenAPI 3.0.x and 3.1.x are supported",
		},
		{
			name: "version only",
			err:  &UnsupportedVersionError{Version: "3.2.0"},
			want: "unsupported version 3.2.0: only OpenAPI 3.0.x and 3.1.x are supported",
		},
		{
			name: "empty",
			err:  &UnsupportedVersionError{},
			want: "unsupported version: only OpenAPI 3.0.x and 3.1.x are supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("Is and As", func(t *testing.T) {
		err := fmt.Errorf("parser: %w", &UnsupportedVersionError{Version: "3.2.0"})
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Error("should match ErrUnsupportedVersion")
		}
		if errors.Is(err, ErrParse) {
			t.Error("should not match ErrParse")
		}
		var verErr *UnsupportedVersionError
		if !errors.As(err, &verErr) || verErr.Version != "3.2.0" {
			t.Error("errors.As should extract the version")
		}
		if errors.Unwrap(verErr) != nil {
			t.Error("UnsupportedVersionError has no cause")
		}
	})
}

func TestResourceLimitError(t *testing.T) {
	tests := []struct {
		name string
		err  *ResourceLimitError
		want string
	}{
		{
			name: "limit and actual",
			err:  &ResourceLimitError{ResourceType: ResourceInputSize, Limit: 1024, Actual: 4096},
			want: "resource limit exceeded: input_size (limit: 1024, actual: 4096)",
		},
		{
			name: "limit only with message",
			err:  &ResourceLimitError{ResourceType: "input_size", Limit: 10, Message: "reader stopped early"},
			want: "resource limit exceeded: input_size (limit: 10): reader stopped early",
		},
		{
			name: "actual without limit",
			err:  &ResourceLimitError{ResourceType: "input_size", Actual: 99},
			want: "resource limit exceeded: input_size",
		},
		{
			name: "empty",
			err:  &ResourceLimitError{},
			want: "resource limit exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrResourceLimit) {
				t.Error("should match ErrResourceLimit")
			}
		})
	}
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "WithMaxInputSize",
			Value:   -5,
			Message: "cannot be negative",
			Cause:   errors.New("bad flag"),
		}
		want := "configuration error for WithMaxInputSize (value: -5): cannot be negative: bad flag"
		if got := err.Error(); got != want {
			t.Errorf("unexpected error message: %s", got)
		}
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := &ConfigError{Option: "input source", Message: "must specify exactly one input source"}
		want := "configuration error for input source: must specify exactly one input source"
		if got := err.Error(); got != want {
			t.Errorf("unexpected error message: %s", got)
		}
	})

	t.Run("Is matches ErrConfig and unwraps", func(t *testing.T) {
		cause := errors.New("underlying")
		err := fmt.Errorf("parser: invalid options: %w", &ConfigError{Cause: cause})
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
		if !errors.Is(err, cause) {
			t.Error("ConfigError should unwrap to its cause")
		}
		if errors.Is(err, ErrResourceLimit) {
			t.Error("ConfigError should not match ErrResourceLimit")
		}
	})
}
