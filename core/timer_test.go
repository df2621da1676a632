package core

import (
	"testing"
	"time"
)

func TestTimerFinishesAtDuration(t *testing.T) {
	timer := NewTimer(100 * time.Millisecond)

	if timer.Finished() {
		t.Fatal("Expected new timer to be unfinished")
	}

	timer.Tick(60 * time.Millisecond)
	if timer.Finished() {
		t.Error("Expected timer to be unfinished after 60ms of 100ms")
	}
	if timer.Remaining() != 40*time.Millisecond {
		t.Errorf("Expected 40ms remaining, got %v", timer.Remaining())
	}

	timer.Tick(40 * time.Millisecond)
	if !timer.Finished() {
		t.Error("Expected timer to be finished after exactly 100ms")
	}
}

func TestTimerSaturates(t *testing.T) {
	timer := NewTimer(50 * time.Millisecond)
	timer.Tick(time.Second)

	if timer.Elapsed() != 50*time.Millisecond {
		t.Errorf("Expected elapsed to saturate at 50ms, got %v", timer.Elapsed())
	}
	if timer.Remaining() != 0 {
		t.Errorf("Expected 0 remaining, got %v", timer.Remaining())
	}
}

func TestTimerNegativeDeltaIgnored(t *testing.T) {
	timer := NewTimer(50 * time.Millisecond)
	timer.Tick(-10 * time.Millisecond)
	if timer.Elapsed() != 0 {
		t.Errorf("Expected negative delta to be ignored, got elapsed %v", timer.Elapsed())
	}
}

func TestTimerReset(t *testing.T) {
	timer := NewTimer(50 * time.Millisecond)
	timer.Tick(80 * time.Millisecond)
	timer.Reset()

	if timer.Finished() {
		t.Error("Expected reset timer to be unfinished")
	}
	if timer.Duration() != 50*time.Millisecond {
		t.Errorf("Expected duration to be kept, got %v", timer.Duration())
	}
}

func TestTimerResetWith(t *testing.T) {
	timer := NewTimer(50 * time.Millisecond)
	timer.Tick(50 * time.Millisecond)
	timer.ResetWith(250 * time.Millisecond)

	if timer.Duration() != 250*time.Millisecond {
		t.Errorf("Expected duration 250ms, got %v", timer.Duration())
	}
	if timer.Elapsed() != 0 {
		t.Errorf("Expected elapsed 0, got %v", timer.Elapsed())
	}
}

func TestTimerSetDurationClampsElapsed(t *testing.T) {
	timer := NewTimer(time.Second)
	timer.Tick(700 * time.Millisecond)
	timer.SetDuration(500 * time.Millisecond)

	if !timer.Finished() {
		t.Error("Expected shortened timer to be finished")
	}
	if timer.Remaining() != 0 {
		t.Errorf("Expected 0 remaining, got %v", timer.Remaining())
	}
}

func TestTimerFraction(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		tick     time.Duration
		want     float64
	}{
		{"fresh", 100 * time.Millisecond, 0, 1},
		{"half", 100 * time.Millisecond, 50 * time.Millisecond, 0.5},
		{"done", 100 * time.Millisecond, 100 * time.Millisecond, 0},
		{"zero length", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewTimer(tt.duration)
			timer.Tick(tt.tick)
			if got := timer.Fraction(); got != tt.want {
				t.Errorf("Expected fraction %v, got %v", tt.want, got)
			}
		})
	}
}
