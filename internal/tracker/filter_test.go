package tracker

import (
	"reflect"
	"testing"
)

func TestNewFilter(t *testing.T) {
	f := NewFilter([]string{"com.example.app", " com.other:remote ", "com.main:", ""})
	if want := []string{"com.example.app"}; !reflect.DeepEqual(f.Catchall, want) {
		t.Fatalf("Catchall = %v, want %v", f.Catchall, want)
	}
	if want := []string{"com.other:remote", "com.main"}; !reflect.DeepEqual(f.Named, want) {
		t.Fatalf("Named = %v, want %v", f.Named, want)
	}
}

func TestFilterMatch(t *testing.T) {
	tests := []struct {
		name     string
		packages []string
		token    string
		want     bool
	}{
		{"empty filter matches everything", nil, "anything", true},
		{"catch-all exact", []string{"com.example.app"}, "com.example.app", true},
		{"catch-all across qualifier", []string{"com.example.app"}, "com.example.app:remote", true},
		{"catch-all different package", []string{"com.example.app"}, "com.example.other", false},
		{"catch-all is not a string prefix", []string{"com.example"}, "com.example.app", false},
		{"named exact", []string{"com.example.app:remote"}, "com.example.app:remote", true},
		{"named other qualifier", []string{"com.example.app:remote"}, "com.example.app:sync", false},
		{"named does not match main process", []string{"com.example.app:remote"}, "com.example.app", false},
		{"trailing colon selects main process", []string{"com.example.app:"}, "com.example.app", true},
		{"trailing colon skips secondary", []string{"com.example.app:"}, "com.example.app:remote", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewFilter(tt.packages).Match(tt.token); got != tt.want {
				t.Fatalf("Match(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}
