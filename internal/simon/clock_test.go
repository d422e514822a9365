package simon

import (
	"reflect"
	"testing"
	"time"
)

func TestClockFiresInDeadlineOrder(t *testing.T) {
	c := NewClock()
	var order []string

	c.After(300*time.Millisecond, func() { order = append(order, "c") })
	c.After(100*time.Millisecond, func() { order = append(order, "a") })
	c.After(200*time.Millisecond, func() { order = append(order, "b") })

	if fired := c.Advance(250 * time.Millisecond); fired != 2 {
		t.Errorf("Advance() fired %d timers, expected 2", fired)
	}
	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Errorf("order = %v", order)
	}
	if c.Now() != 250*time.Millisecond {
		t.Errorf("Now() = %v, expected 250ms", c.Now())
	}

	c.Advance(50 * time.Millisecond)
	if !reflect.DeepEqual(order, []string{"a", "b", "c"}) {
		t.Errorf("order = %v", order)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", c.Pending())
	}
}

func TestClockTiesFireFIFO(t *testing.T) {
	c := NewClock()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		c.After(time.Second, func() { order = append(order, i) })
	}
	c.Advance(time.Second)

	if !reflect.DeepEqual(order, []int{0, 1, 2, 3, 4}) {
		t.Errorf("order = %v", order)
	}
}

func TestClockNestedTimersWithinOneAdvance(t *testing.T) {
	c := NewClock()
	var at []time.Duration

	c.After(100*time.Millisecond, func() {
		at = append(at, c.Now())
		c.After(100*time.Millisecond, func() {
			at = append(at, c.Now())
			c.After(500*time.Millisecond, func() {
				at = append(at, c.Now())
			})
		})
	})

	// One coarse step must behave like many fine ones
	c.Advance(time.Second)

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 700 * time.Millisecond}
	if !reflect.DeepEqual(at, want) {
		t.Errorf("fired at %v, expected %v", at, want)
	}
}

func TestClockZeroAndNegativeDelays(t *testing.T) {
	c := NewClock()
	fired := 0
	c.After(0, func() { fired++ })
	c.After(-time.Second, func() { fired++ })

	if fired != 0 {
		t.Fatal("timers must not fire before Advance")
	}
	c.Advance(0)
	if fired != 2 {
		t.Errorf("fired = %d, expected 2", fired)
	}
}

func TestClockNextDeadline(t *testing.T) {
	c := NewClock()
	if _, ok := c.NextDeadline(); ok {
		t.Error("empty clock should have no deadline")
	}

	c.After(time.Second, func() {})
	c.Advance(400 * time.Millisecond)

	d, ok := c.NextDeadline()
	if !ok || d != 600*time.Millisecond {
		t.Errorf("NextDeadline() = %v, %v; expected 600ms, true", d, ok)
	}
}
