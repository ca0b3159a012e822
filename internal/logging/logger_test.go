package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	t.Run("String creates field with key and string value", func(t *testing.T) {
		f := String("key", "value")
		if f.Key != "key" {
			t.Errorf("String().Key = %q, want %q", f.Key, "key")
		}
		if f.Value != "value" {
			t.Errorf("String().Value = %q, want %q", f.Value, "value")
		}
	})

	t.Run("Int creates field with key and int value", func(t *testing.T) {
		f := Int("crossings", 42)
		if f.Key != "crossings" {
			t.Errorf("Int().Key = %q, want %q", f.Key, "crossings")
		}
		if f.Value != 42 {
			t.Errorf("Int().Value = %v, want %v", f.Value, 42)
		}
	})

	t.Run("Uint64 creates field with key and uint64 value", func(t *testing.T) {
		f := Uint64("instructions", 12345678901234567890)
		if f.Key != "instructions" {
			t.Errorf("Uint64().Key = %q, want %q", f.Key, "instructions")
		}
		if f.Value != uint64(12345678901234567890) {
			t.Errorf("Uint64().Value = %v, want %v", f.Value, uint64(12345678901234567890))
		}
	})

	t.Run("Float64 creates field with key and float64 value", func(t *testing.T) {
		f := Float64("ratio", 3.14159)
		if f.Key != "ratio" {
			t.Errorf("Float64().Key = %q, want %q", f.Key, "ratio")
		}
		if f.Value != 3.14159 {
			t.Errorf("Float64().Value = %v, want %v", f.Value, 3.14159)
		}
	})

	t.Run("Err creates field with error key", func(t *testing.T) {
		testErr := errors.New("test error")
		f := Err(testErr)
		if f.Key != "error" {
			t.Errorf("Err().Key = %q, want %q", f.Key, "error")
		}
		if f.Value != testErr {
			t.Errorf("Err().Value = %v, want %v", f.Value, testErr)
		}
	})

	t.Run("Err with nil error", func(t *testing.T) {
		f := Err(nil)
		if f.Key != "error" {
			t.Errorf("Err(nil).Key = %q, want %q", f.Key, "error")
		}
		if f.Value != nil {
			t.Errorf("Err(nil).Value = %v, want nil", f.Value)
		}
	})
}

// TestNewZerologAdapter tests the ZerologAdapter constructor.
func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	adapter := NewZerologAdapter(zl)

	if adapter == nil {
		t.Fatal("NewZerologAdapter returned nil")
	}

	adapter.Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("NewZerologAdapter logger not working, output: %s", buf.String())
	}
}

// TestNewLogger tests the custom logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "dialsim", false)

	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}

	logger.Info("hello")
	output := buf.String()

	if !strings.Contains(output, "dialsim") {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

// TestZerologAdapter_Info tests the Info method.
func TestZerologAdapter_Info(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		fields   []Field
		contains []string
	}{
		{
			name:     "no fields",
			msg:      "test message",
			fields:   nil,
			contains: []string{"test message", "info"},
		},
		{
			name:     "with string field",
			msg:      "input loaded",
			fields:   []Field{String("path", "input.txt")},
			contains: []string{"input loaded", "input.txt"},
		},
		{
			name:     "with multiple fields",
			msg:      "counter finished",
			fields:   []Field{String("counter", "crossings"), Int("count", 6)},
			contains: []string{"counter finished", "crossings", "6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test", false)
			logger.Info(tt.msg, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_Error tests the Error method.
func TestZerologAdapter_Error(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		err      error
		fields   []Field
		contains []string
	}{
		{
			name:     "with error",
			msg:      "self-check failed",
			err:      errors.New("expected 3, got 2"),
			fields:   nil,
			contains: []string{"self-check failed", "expected 3, got 2", "error"},
		},
		{
			name:     "with nil error",
			msg:      "warning",
			err:      nil,
			fields:   nil,
			contains: []string{"warning", "error"},
		},
		{
			name:     "with error and fields",
			msg:      "parse failed",
			err:      errors.New("invalid distance"),
			fields:   []Field{String("text", "X5"), Int("line", 3)},
			contains: []string{"parse failed", "invalid distance", "X5", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test", false)
			logger.Error(tt.msg, tt.err, tt.fields...)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_Debug tests the Debug method.
func TestZerologAdapter_Debug(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.DebugLevel)
	logger := NewZerologAdapter(zl)

	logger.Debug("debug message", String("key", "value"))

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Debug output should contain message, got: %s", output)
	}
	if !strings.Contains(output, "debug") {
		t.Errorf("Debug output should contain level, got: %s", output)
	}
}

// TestZerologAdapter_Printf tests the Printf method.
func TestZerologAdapter_Printf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test", false)

	logger.Printf("formatted %s %d", "message", 42)

	output := buf.String()
	if !strings.Contains(output, "formatted message 42") {
		t.Errorf("Printf should format message, got: %s", output)
	}
}

// TestZerologAdapter_Println tests the Println method.
func TestZerologAdapter_Println(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test", false)

	logger.Println("hello", "world")

	output := buf.String()
	if !strings.Contains(output, "hello") || !strings.Contains(output, "world") {
		t.Errorf("Println should include all arguments, got: %s", output)
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test", false)
			logger.Info("test", tt.field)

			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, output)
			}
		})
	}
}

// TestLoggerInterface verifies the constructors implement the Logger interface.
func TestLoggerInterface(t *testing.T) {
	t.Run("ZerologAdapter implements Logger", func(t *testing.T) {
		var buf bytes.Buffer
		var _ Logger = NewLogger(&buf, "test", false)
	})

	t.Run("Nop implements Logger", func(t *testing.T) {
		var _ Logger = Nop()
	})
}

// TestNewLoggerLevel verifies the JSON logger honors the verbose flag.
func TestNewLoggerLevel(t *testing.T) {
	var quiet, verbose bytes.Buffer
	NewLogger(&quiet, "dialsim", false).Debug("self-check passed", Int("counters", 3))
	NewLogger(&verbose, "dialsim", true).Debug("self-check passed", Int("counters", 3))

	if quiet.Len() != 0 {
		t.Errorf("expected no debug output, got: %s", quiet.String())
	}
	for _, want := range []string{`"level":"debug"`, `"counters":3`, `"component":"dialsim"`} {
		if !strings.Contains(verbose.String(), want) {
			t.Errorf("JSON output should contain %s, got: %s", want, verbose.String())
		}
	}
}

// TestNewConsoleLogger verifies the level switch driven by the verbose flag.
func TestNewConsoleLogger(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	t.Run("debug suppressed when not verbose", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewConsoleLogger(&buf, "dialsim", false)
		logger.Debug("step applied", Int("position", 82))
		if buf.Len() != 0 {
			t.Errorf("expected no debug output, got: %s", buf.String())
		}
		logger.Info("run finished")
		if !strings.Contains(buf.String(), "run finished") {
			t.Errorf("expected info output, got: %s", buf.String())
		}
	})

	t.Run("debug emitted when verbose", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewConsoleLogger(&buf, "dialsim", true)
		logger.Debug("step applied", Int("position", 82))
		output := buf.String()
		if !strings.Contains(output, "step applied") || !strings.Contains(output, "82") {
			t.Errorf("expected debug output with fields, got: %s", output)
		}
	})
}

// TestNop verifies the discarding logger satisfies Logger and does not panic.
func TestNop(t *testing.T) {
	logger := Nop()
	logger.Info("ignored", String("k", "v"))
	logger.Error("ignored", errors.New("boom"))
	logger.Println("ignored")
}
