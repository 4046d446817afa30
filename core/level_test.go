package core

import (
	"errors"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{TraceLevel, "TRACE"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{OffLevel, "OFF"},
		{Level(33), "LEVEL(33)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	order := []Level{NotSetLevel, DebugLevel, TraceLevel, InfoLevel, WarningLevel, ErrorLevel, FatalLevel, OffLevel}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("%v should be below %v", order[i-1], order[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"off", OffLevel},
		{"fatal", FatalLevel},
		{"error", ErrorLevel},
		{"warning", WarningLevel},
		{"info", InfoLevel},
		{"trace", TraceLevel},
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{" Trace ", TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	for _, name := range []string{"verbose", "", "  ", "notset", "warn", "critical", "15"} {
		got, err := ParseLevel(name)
		if !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("ParseLevel(%q) error = %v, want ErrUnknownLevel", name, err)
		}
		if got != NotSetLevel {
			t.Errorf("ParseLevel(%q) = %v on error", name, got)
		}
	}
}

func TestLevelNames(t *testing.T) {
	want := []string{"off", "fatal", "error", "warning", "info", "trace", "debug"}
	got := LevelNames()
	if len(got) != len(want) {
		t.Fatalf("LevelNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LevelNames()[%d] = %q, want %q", i, got[i], want[i])
		}
		lvl, err := ParseLevel(got[i])
		if err != nil {
			t.Errorf("name %q does not parse: %v", got[i], err)
		}
		if i > 0 {
			prev, _ := ParseLevel(got[i-1])
			if prev <= lvl {
				t.Errorf("%q listed before %q but is not more severe", got[i-1], got[i])
			}
		}
	}

	got[0] = "changed"
	if LevelNames()[0] != "off" {
		t.Error("LevelNames() exposes internal storage")
	}
}

func TestLevel_UnmarshalText(t *testing.T) {
	var l Level
	if err := l.UnmarshalText([]byte("trace")); err != nil || l != TraceLevel {
		t.Errorf("UnmarshalText(trace) = %v, %v", l, err)
	}
	if err := l.UnmarshalText([]byte("30")); err != nil || l != WarningLevel {
		t.Errorf("UnmarshalText(30) = %v, %v", l, err)
	}
	if err := l.UnmarshalText([]byte("NOTSET")); err != nil || l != NotSetLevel {
		t.Errorf("UnmarshalText(NOTSET) = %v, %v", l, err)
	}
	for _, bad := range []string{"loud", "25", "999", "-3", "", "warn"} {
		l = InfoLevel
		if err := l.UnmarshalText([]byte(bad)); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("UnmarshalText(%q) error = %v", bad, err)
		}
		if l != InfoLevel {
			t.Errorf("UnmarshalText(%q) changed the level to %v", bad, l)
		}
	}

	text, _ := WarningLevel.MarshalText()
	if string(text) != "warning" {
		t.Errorf("MarshalText() = %q", text)
	}
}

func TestLevel_Defined(t *testing.T) {
	for _, l := range []Level{NotSetLevel, DebugLevel, TraceLevel, InfoLevel, WarningLevel, ErrorLevel, FatalLevel, OffLevel} {
		if !l.Defined() {
			t.Errorf("%v should be defined", l)
		}
	}
	for _, l := range []Level{Level(-3), Level(25), Level(999)} {
		if l.Defined() {
			t.Errorf("%v should not be defined", l)
		}
	}
}

func TestLevel_TextRoundTrip(t *testing.T) {
	for _, l := range []Level{NotSetLevel, TraceLevel, OffLevel} {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Level
		if err := got.UnmarshalText(text); err != nil || got != l {
			t.Errorf("round trip of %v = %v, %v", l, got, err)
		}
	}
}
