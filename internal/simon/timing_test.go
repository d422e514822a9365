package simon

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-simon/internal/config"
)

func TestAdjustThirdRound(t *testing.T) {
	d := DefaultDifficulty()

	got := d.Adjust(DefaultTiming(), 3)
	want := Timing{
		Flash:            350 * time.Millisecond,
		PreSequencePause: 625 * time.Millisecond,
		InterSignalPause: 190 * time.Millisecond,
	}
	if got != want {
		t.Errorf("Adjust(default, 3) = %v, expected %v", got, want)
	}
}

func TestAdjustOnlyOnMultiples(t *testing.T) {
	d := DefaultDifficulty()
	base := DefaultTiming()

	for _, score := range []int{0, 1, 2, 4, 5, 7, 8, -3} {
		if got := d.Adjust(base, score); got != base {
			t.Errorf("Adjust(base, %d) = %v, expected unchanged", score, got)
		}
	}
	for _, score := range []int{3, 6, 9, 30} {
		if got := d.Adjust(base, score); got == base {
			t.Errorf("Adjust(base, %d) should tighten timing", score)
		}
	}
}

func TestAdjustIsPure(t *testing.T) {
	d := DefaultDifficulty()
	base := DefaultTiming()

	for score := 0; score <= 30; score++ {
		a := d.Adjust(base, score)
		b := d.Adjust(base, score)
		if a != b {
			t.Errorf("Adjust(base, %d) not deterministic: %v vs %v", score, a, b)
		}
	}
	if base != DefaultTiming() {
		t.Error("Adjust must not modify its input")
	}
}

func TestTimingMonotonicWithFloors(t *testing.T) {
	d := DefaultDifficulty()
	prev := DefaultTiming()

	for score := 1; score <= 300; score++ {
		cur := d.Adjust(prev, score)

		if cur.Flash > prev.Flash || cur.PreSequencePause > prev.PreSequencePause || cur.InterSignalPause > prev.InterSignalPause {
			t.Fatalf("timing increased at score %d: %v -> %v", score, prev, cur)
		}
		if cur.Flash < 100*time.Millisecond {
			t.Fatalf("flash below floor at score %d: %v", score, cur.Flash)
		}
		if cur.PreSequencePause < 325*time.Millisecond {
			t.Fatalf("pre-sequence pause below floor at score %d: %v", score, cur.PreSequencePause)
		}
		if cur.InterSignalPause < 150*time.Millisecond {
			t.Fatalf("inter-signal pause below floor at score %d: %v", score, cur.InterSignalPause)
		}
		prev = cur
	}

	floor := Timing{
		Flash:            100 * time.Millisecond,
		PreSequencePause: 325 * time.Millisecond,
		InterSignalPause: 150 * time.Millisecond,
	}
	if prev != floor {
		t.Errorf("after 300 rounds timing = %v, expected floors %v", prev, floor)
	}
}

func TestAdjustBelowFloorUnchanged(t *testing.T) {
	d := DefaultDifficulty()
	low := Timing{Flash: 80 * time.Millisecond, PreSequencePause: 300 * time.Millisecond, InterSignalPause: 100 * time.Millisecond}

	if got := d.Adjust(low, 3); got != low {
		t.Errorf("Adjust() raised or lowered sub-floor timing: %v", got)
	}
}

func TestAdjustDisabled(t *testing.T) {
	d := DefaultDifficulty()
	d.Enabled = false

	if got := d.Adjust(DefaultTiming(), 3); got != DefaultTiming() {
		t.Errorf("disabled difficulty changed timing: %v", got)
	}
}

func TestForScore(t *testing.T) {
	d := DefaultDifficulty()

	tests := []struct {
		score int
		flash time.Duration
	}{
		{0, 400 * time.Millisecond},
		{2, 400 * time.Millisecond},
		{3, 350 * time.Millisecond},
		{8, 300 * time.Millisecond},
		{9, 250 * time.Millisecond},
		{100, 100 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := d.ForScore(DefaultTiming(), tc.score).Flash; got != tc.flash {
			t.Errorf("ForScore(%d).Flash = %v, expected %v", tc.score, got, tc.flash)
		}
	}
}

func TestSettingsFromConfig(t *testing.T) {
	s := SettingsFromConfig(config.DefaultSimonConfig())
	want := DefaultSettings()

	if s != want {
		t.Errorf("SettingsFromConfig(default) = %+v, expected %+v", s, want)
	}
}

func TestSettingsFromConfigHeadStart(t *testing.T) {
	cfg := config.DefaultSimonConfig()
	cfg.Difficulty.HeadStart = 9

	s := SettingsFromConfig(cfg)
	want := Timing{
		Flash:            250 * time.Millisecond,
		PreSequencePause: 475 * time.Millisecond,
		InterSignalPause: 170 * time.Millisecond,
	}
	if s.Timing != want {
		t.Errorf("head start timing = %v, expected %v", s.Timing, want)
	}
}

func TestTimingString(t *testing.T) {
	if got := DefaultTiming().String(); got != "flash=400ms pre=700ms gap=200ms" {
		t.Errorf("String() = %q", got)
	}
}
