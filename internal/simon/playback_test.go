package simon

import (
	"reflect"
	"testing"
	"time"
)

func TestPresenterCompletesOnceAfterSettle(t *testing.T) {
	clock := NewClock()
	display := &recordingDisplay{clock: clock}
	p := NewPresenter(display, 100*time.Millisecond)

	done := 0
	p.Present(clock, Blue, DefaultTiming(), func() { done++ })

	clock.Advance(499 * time.Millisecond)
	if done != 0 {
		t.Fatal("completion fired before flash + settle elapsed")
	}
	clock.Advance(time.Millisecond)
	if done != 1 {
		t.Fatalf("completion fired %d times, expected 1", done)
	}
	clock.Advance(10 * time.Second)
	if done != 1 {
		t.Fatalf("completion fired %d times, expected 1", done)
	}

	want := []litEvent{
		{at: 0, sig: Blue, lit: true},
		{at: 400 * time.Millisecond, sig: Blue, lit: false},
	}
	if !reflect.DeepEqual(display.events, want) {
		t.Errorf("display events = %+v, expected %+v", display.events, want)
	}
}

func TestPlaybackTimeline(t *testing.T) {
	clock := NewClock()
	display := &recordingDisplay{clock: clock}
	pb := NewPlayback(NewPresenter(display, 100*time.Millisecond))

	var doneAt time.Duration = -1
	pb.Play(clock, NewSequence(Green, Red, Green), DefaultTiming(), func() { doneAt = clock.Now() })

	clock.Advance(10 * time.Second)

	ms := time.Millisecond
	want := []litEvent{
		{at: 700 * ms, sig: Green, lit: true},
		{at: 1100 * ms, sig: Green, lit: false},
		{at: 1400 * ms, sig: Red, lit: true},
		{at: 1800 * ms, sig: Red, lit: false},
		{at: 2100 * ms, sig: Green, lit: true},
		{at: 2500 * ms, sig: Green, lit: false},
	}
	if !reflect.DeepEqual(display.events, want) {
		t.Errorf("display events =\n%+v\nexpected\n%+v", display.events, want)
	}
	if doneAt != 2800*ms {
		t.Errorf("playback finished at %v, expected 2.8s", doneAt)
	}
}

func TestPlaybackNeverOverlaps(t *testing.T) {
	clock := NewClock()
	display := &recordingDisplay{clock: clock}
	pb := NewPlayback(NewPresenter(display, 100*time.Millisecond))

	fast := Timing{Flash: 100 * time.Millisecond, PreSequencePause: 325 * time.Millisecond, InterSignalPause: 150 * time.Millisecond}
	seq := NewSequence(Green, Green, Red, Blue, Yellow, Yellow)
	pb.Play(clock, seq, fast, func() {})

	// Step with an awkward frame size to make sure nothing depends on it
	for i := 0; i < 500; i++ {
		clock.Advance(7 * time.Millisecond)
	}

	lit := 0
	for _, ev := range display.events {
		if ev.lit {
			lit++
		} else {
			lit--
		}
		if lit > 1 || lit < 0 {
			t.Fatalf("more than one pad lit at %v", ev.at)
		}
	}
	if got := display.litSignals(); !reflect.DeepEqual(got, seq.Signals()) {
		t.Errorf("presented %v, expected %v", got, seq.Signals())
	}
}

func TestPlaybackEmptySequence(t *testing.T) {
	clock := NewClock()
	pb := NewPlayback(NewPresenter(nil, 100*time.Millisecond))

	done := false
	pb.Play(clock, Sequence{}, DefaultTiming(), func() { done = true })
	clock.Advance(700 * time.Millisecond)

	if !done {
		t.Error("empty playback should finish after the pre-sequence pause")
	}
}

func TestEchoSamePadTwiceStaysLitForFullFlash(t *testing.T) {
	clock := NewClock()
	display := &recordingDisplay{clock: clock}
	p := NewPresenter(display, 100*time.Millisecond)
	timing := DefaultTiming()

	p.Echo(clock, Green, timing)
	clock.Advance(100 * time.Millisecond)
	p.Echo(clock, Green, timing)

	// The first echo's timer comes due here but the pad was lit again
	clock.Advance(300 * time.Millisecond)
	for _, ev := range display.events {
		if !ev.lit {
			t.Fatalf("pad turned off early at %v", ev.at)
		}
	}

	clock.Advance(100 * time.Millisecond)
	last := display.events[len(display.events)-1]
	if last.lit || last.at != 500*time.Millisecond {
		t.Errorf("last event = %+v, expected unlit at 500ms", last)
	}
}

func TestEchoDoesNotCutShortLaterFlash(t *testing.T) {
	clock := NewClock()
	display := &recordingDisplay{clock: clock}
	p := NewPresenter(display, 100*time.Millisecond)
	slow := Timing{Flash: time.Second, PreSequencePause: 100 * time.Millisecond, InterSignalPause: 100 * time.Millisecond}

	p.Echo(clock, Red, slow)
	clock.Advance(200 * time.Millisecond)
	done := false
	p.Present(clock, Red, slow, func() { done = true })

	clock.Advance(900 * time.Millisecond)
	var offs []time.Duration
	for _, ev := range display.events {
		if !ev.lit {
			offs = append(offs, ev.at)
		}
	}
	if len(offs) != 0 {
		t.Fatalf("presented pad turned off at %v, before its own flash ended", offs)
	}

	clock.Advance(400 * time.Millisecond)
	if !done {
		t.Error("presentation never completed")
	}
}

func TestBlankInvalidatesPendingUnlight(t *testing.T) {
	clock := NewClock()
	display := &recordingDisplay{clock: clock}
	p := NewPresenter(display, 100*time.Millisecond)

	p.Echo(clock, Blue, DefaultTiming())
	p.Blank()
	display.events = nil

	clock.Advance(time.Second)
	if len(display.events) != 0 {
		t.Errorf("stale unlight touched the display: %+v", display.events)
	}
}
