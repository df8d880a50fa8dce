package main

import "testing"

func TestParseProgressDisplay(t *testing.T) {
	cases := []struct {
		value string
		want  progressDisplay
		bad   bool
	}{
		{"", displayAuto, false},
		{"auto", displayAuto, false},
		{"on", displayAlways, false},
		{"OFF", displayNever, false},
		{" on ", displayAlways, false},
		{"tui", 0, true},
		{"yes", 0, true},
	}
	for _, tc := range cases {
		got, err := parseProgressDisplay(tc.value)
		if tc.bad {
			if err == nil {
				t.Fatalf("value %q should be rejected", tc.value)
			}
			continue
		}
		if err != nil {
			t.Fatalf("value %q: %v", tc.value, err)
		}
		if got != tc.want {
			t.Fatalf("value %q = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestWantsProgressUI_StdoutArtifactWins(t *testing.T) {
	// Even an explicit "on" yields to an artifact streaming to stdout.
	if displayAlways.wantsProgressUI(true) {
		t.Fatalf("view must not run over a stdout artifact")
	}
	if !displayAlways.wantsProgressUI(false) {
		t.Fatalf("explicit on should run the view")
	}
	if displayNever.wantsProgressUI(false) {
		t.Fatalf("explicit off should suppress the view")
	}
}
