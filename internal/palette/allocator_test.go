package palette

import (
	"fmt"
	"reflect"
	"testing"
)

func TestAllocator_KnownTagsKeepOverride(t *testing.T) {
	a := NewAllocator(nil)
	before := a.Recent()

	if got := a.ColorFor("ActivityManager"); got != White {
		t.Fatalf("ColorFor(ActivityManager) = %v, want white", got)
	}
	if got := a.ColorFor("AndroidRuntime"); got != Cyan {
		t.Fatalf("ColorFor(AndroidRuntime) = %v, want cyan", got)
	}
	if got := a.ColorFor("DEBUG"); got != Yellow {
		t.Fatalf("ColorFor(DEBUG) = %v, want yellow", got)
	}
	// white is not in rotation, so the recency list only moved for cyan and yellow
	want := []Color{Red, Green, Blue, Magenta, Cyan, Yellow}
	if got := a.Recent(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Recent = %v, want %v (was %v)", got, want, before)
	}
}

func TestAllocator_AssignsFrontAndMovesToBack(t *testing.T) {
	a := NewAllocator(nil)

	if got := a.ColorFor("A"); got != Red {
		t.Fatalf("ColorFor(A) = %v, want red", got)
	}
	if got := a.ColorFor("B"); got != Green {
		t.Fatalf("ColorFor(B) = %v, want green", got)
	}
	if got := a.ColorFor("A"); got != Red {
		t.Fatalf("repeat ColorFor(A) = %v, want red", got)
	}
	want := []Color{Yellow, Blue, Magenta, Cyan, Green, Red}
	if got := a.Recent(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Recent = %v, want %v", got, want)
	}
}

func TestAllocator_StableWhileRecentlyUsed(t *testing.T) {
	a := NewAllocator(nil)
	first := a.ColorFor("MyTag")

	// Interleave a repeat lookup after every new tag: MyTag keeps moving to
	// the back and can never reach the front.
	for i := 0; i < 20; i++ {
		a.ColorFor(fmt.Sprintf("other-%d", i))
		if got := a.ColorFor("MyTag"); got != first {
			t.Fatalf("after %d other tags ColorFor(MyTag) = %v, want %v", i+1, got, first)
		}
	}
}

func TestAllocator_ReassignedOnceEvicted(t *testing.T) {
	a := NewAllocator(nil)
	first := a.ColorFor("MyTag")

	others := make([]Color, 0, 6)
	for i := 0; i < 6; i++ {
		others = append(others, a.ColorFor(fmt.Sprintf("other-%d", i)))
	}
	// The sixth new tag takes MyTag's color once it reaches the front.
	if others[5] != first {
		t.Fatalf("sixth new tag got %v, want evicted color %v", others[5], first)
	}
	// MyTag still resolves to its original color; it now shares it.
	if got := a.ColorFor("MyTag"); got != first {
		t.Fatalf("ColorFor(MyTag) = %v, want %v", got, first)
	}
	if a.ColorFor("other-5") != a.ColorFor("MyTag") {
		t.Fatalf("evicted tag and newcomer should share a color")
	}
}

func TestAllocator_ExtraOverrides(t *testing.T) {
	a := NewAllocator(map[string]Color{"Chatty": Magenta, "DEBUG": Red})
	if got := a.ColorFor("Chatty"); got != Magenta {
		t.Fatalf("ColorFor(Chatty) = %v, want magenta", got)
	}
	if got := a.ColorFor("DEBUG"); got != Red {
		t.Fatalf("ColorFor(DEBUG) = %v, want red override", got)
	}
}
