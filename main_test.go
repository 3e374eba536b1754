package main

import "testing"

func TestBuildDemoAdd(t *testing.T) {
	asm, entry, ok := buildDemo("add")
	if !ok || asm == nil || entry == nil {
		t.Fatalf("buildDemo(add) = (%v, %v, %v)", asm, entry, ok)
	}
}

func TestBuildDemoUnknownFails(t *testing.T) {
	_, _, ok := buildDemo("nope")
	if ok {
		t.Fatalf("expected buildDemo(nope) to fail")
	}
}

func TestKnownDemoMatchesBuildDemo(t *testing.T) {
	for _, name := range []string{"add", "div", "concat", "native"} {
		if !knownDemo(name) {
			t.Errorf("knownDemo(%q) = false, want true", name)
		}
		if _, _, ok := buildDemo(name); !ok {
			t.Errorf("buildDemo(%q) failed", name)
		}
	}
	if knownDemo("bogus") {
		t.Errorf("knownDemo(bogus) = true, want false")
	}
}

func TestRunDemoExitCodes(t *testing.T) {
	for _, name := range []string{"add", "div", "concat", "native"} {
		if got := runDemo(name, false, false); got != exitOK {
			t.Errorf("runDemo(%s) = %d, want %d", name, got, exitOK)
		}
	}
	if got := runDemo("bogus", false, false); got != exitBadArgument {
		t.Errorf("runDemo(bogus) = %d, want %d", got, exitBadArgument)
	}
}
