package log

import (
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(slog.LevelInfo + 2), "INFO+2"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLevels_ContainsAllLevels(t *testing.T) {
	got := slices.Collect(Levels())
	expected := []string{"trace", "debug", "info", "warn", "error"}

	if !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestFormat_String(t *testing.T) {
	if got := FormatText.String(); got != "text" {
		t.Errorf("expected text, got %q", got)
	}

	if got := FormatJSON.String(); got != "json" {
		t.Errorf("expected json, got %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{" text ", FormatText},
		{"bogus", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFormats_ContainsAllFormats(t *testing.T) {
	got := slices.Collect(Formats())
	expected := []string{"text", "json"}

	if !slices.Equal(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestMakeConfig_Defaults(t *testing.T) {
	cfg := makeConfig()

	if cfg.output != io.Discard {
		t.Error("expected default output to discard")
	}

	if cfg.level != DefaultLevel {
		t.Errorf("expected default level %v, got %v", DefaultLevel, cfg.level)
	}

	if cfg.format != DefaultFormat {
		t.Errorf("expected default format %v, got %v", DefaultFormat, cfg.format)
	}

	if cfg.timeLayout != DefaultTimeLayout {
		t.Errorf(
			"expected default time layout %q, got %q",
			DefaultTimeLayout,
			cfg.timeLayout,
		)
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := makeConfig(
		WithLevel(LevelTrace),
		WithFormat(FormatJSON),
		WithTimeLayout("Kitchen"),
		WithCaller(true),
		WithPretty(true),
	)

	if cfg.level != LevelTrace {
		t.Errorf("expected level trace, got %v", cfg.level)
	}

	if cfg.format != FormatJSON {
		t.Errorf("expected format json, got %v", cfg.format)
	}

	if cfg.timeLayout != "Kitchen" {
		t.Errorf("expected time layout Kitchen, got %q", cfg.timeLayout)
	}

	if !cfg.caller {
		t.Error("expected caller enabled")
	}

	if !cfg.pretty {
		t.Error("expected pretty enabled")
	}
}

func TestResolveLayout(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"RFC3339", time.RFC3339},
		{"Kitchen", time.Kitchen},
		{"DateOnly", time.DateOnly},
		{"2006-01-02", "2006-01-02"}, // literal layouts pass through
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := resolveLayout(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
