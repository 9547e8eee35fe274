package logcat

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
		ok   bool
	}{
		{
			name: "padded pid",
			line: "I/ActivityManager( 1234): Start proc 1234:com.example.app/u0a123 for activity com.example.app/.Main",
			want: Record{Level: "I", Tag: "ActivityManager", PID: "1234", Message: "Start proc 1234:com.example.app/u0a123 for activity com.example.app/.Main"},
			ok:   true,
		},
		{
			name: "tag with spaces is trimmed",
			line: "D/My Tag  (   7): hello world",
			want: Record{Level: "D", Tag: "My Tag", PID: "7", Message: "hello world"},
			ok:   true,
		},
		{
			name: "tag containing parentheses stops at pid",
			line: "W/Foo(bar)( 42): x",
			want: Record{Level: "W", Tag: "Foo(bar)", PID: "42", Message: "x"},
			ok:   true,
		},
		{name: "beginning of buffer marker", line: "--------- beginning of main", ok: false},
		{name: "lowercase level", line: "i/Tag( 1): x", ok: false},
		{name: "missing message separator", line: "I/Tag( 1):", ok: false},
		{name: "empty", line: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.line)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLevelIndex(t *testing.T) {
	for i, l := range Levels {
		got, ok := LevelIndex(string(l))
		if !ok || got != i {
			t.Fatalf("LevelIndex(%q) = %d,%v want %d,true", l, got, ok, i)
		}
	}
	if got, ok := LevelIndex("e"); !ok || got != 4 {
		t.Fatalf("LevelIndex(e) = %d,%v want 4,true", got, ok)
	}
	if _, ok := LevelIndex("S"); ok {
		t.Fatalf("LevelIndex(S) ok = true, want false")
	}
	if _, ok := LevelIndex(""); ok {
		t.Fatalf("LevelIndex(\"\") ok = true, want false")
	}
}

func TestIsNoise(t *testing.T) {
	if !IsNoise("E/Trace( 99): error opening trace file: nativeGetEnabledTags failed") {
		t.Fatalf("IsNoise = false for nativeGetEnabledTags line")
	}
	if IsNoise("I/Tag( 1): nothing to see") {
		t.Fatalf("IsNoise = true for ordinary line")
	}
}

func TestIsBacktrace(t *testing.T) {
	if !IsBacktrace("    #00  pc 0001a2b4  /system/lib/libc.so (abort+4)") {
		t.Fatalf("IsBacktrace = false for indented frame")
	}
	if IsBacktrace("backtrace:") {
		t.Fatalf("IsBacktrace = true for header line")
	}
}

func TestIsSystemTag(t *testing.T) {
	for _, tag := range []string{"ActivityManager", "DEBUG", "AndroidRuntime", "dalvikvm"} {
		if !IsSystemTag(tag) {
			t.Fatalf("IsSystemTag(%q) = false, want true", tag)
		}
	}
	for _, tag := range []string{"MyApp", "activitymanager", ""} {
		if IsSystemTag(tag) {
			t.Fatalf("IsSystemTag(%q) = true, want false", tag)
		}
	}
}
