package sandpack

import "testing"

func TestDebouncerFiresAfterQuiescence(t *testing.T) {
	fired := 0
	d := NewDebouncer(0.3, func() { fired++ })

	d.Call()
	d.Update(0.1)
	d.Update(0.1)
	if fired != 0 {
		t.Fatal("fired before quiescence elapsed")
	}
	d.Update(0.1)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	fired := 0
	d := NewDebouncer(0.3, func() { fired++ })

	// Ten calls arriving faster than the quiescence window.
	for range 10 {
		d.Call()
		d.Update(0.05)
	}
	if fired != 0 {
		t.Fatal("fired during the burst")
	}

	d.Update(0.3)
	if fired != 1 {
		t.Fatalf("fired = %d, want exactly 1 after the burst", fired)
	}
}

func TestDebouncerCallResetsTimer(t *testing.T) {
	fired := 0
	d := NewDebouncer(0.3, func() { fired++ })

	d.Call()
	d.Update(0.25)
	d.Call() // push the firing back
	d.Update(0.25)
	if fired != 0 {
		t.Fatal("fired despite timer reset")
	}
	d.Update(0.05)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestDebouncerZeroDelayCoalescesWithinTick(t *testing.T) {
	fired := 0
	d := NewDebouncer(0, func() { fired++ })

	// Multiple calls within one tick fire once on the next update.
	d.Call()
	d.Call()
	d.Call()
	d.Update(0)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	// Quiet ticks don't refire.
	d.Update(0)
	if fired != 1 {
		t.Fatalf("fired = %d after quiet tick, want 1", fired)
	}
}

func TestDebouncerNotArmedByDefault(t *testing.T) {
	fired := 0
	d := NewDebouncer(0.1, func() { fired++ })

	d.Update(10)
	if fired != 0 {
		t.Fatal("fired without a call")
	}
	if d.Pending() {
		t.Error("Pending should be false without a call")
	}
}

func TestDebouncerCancel(t *testing.T) {
	fired := 0
	d := NewDebouncer(0.1, func() { fired++ })

	d.Call()
	if !d.Pending() {
		t.Fatal("Pending should be true after Call")
	}
	d.Cancel()
	d.Update(10)
	if fired != 0 {
		t.Fatal("fired after Cancel")
	}
}

func TestDebouncerRearmsAfterFiring(t *testing.T) {
	fired := 0
	d := NewDebouncer(0.1, func() { fired++ })

	d.Call()
	d.Update(0.1)
	d.Call()
	d.Update(0.1)
	if fired != 2 {
		t.Fatalf("fired = %d, want 2", fired)
	}
}

func TestNewDebouncerPanicsOnNilCallback(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil callback")
		}
	}()
	NewDebouncer(0.1, nil)
}
