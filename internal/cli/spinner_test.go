package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "Connecting to redis...")
	s.Start()
	cancel()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() blocked after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), "Rendering PNG...")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinner(context.Background(), "Rendering PNG...")
	s.Stop()
}

func TestSpinnerWritesOnlyWhenEnabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
	}{
		{"terminal", true},
		{"pipe", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := newSpinner(context.Background(), "Connecting...")
			s.out = &buf
			s.enabled = tt.enabled
			s.Start()
			time.Sleep(200 * time.Millisecond)
			s.Stop()

			wrote := strings.Contains(buf.String(), "Connecting...")
			if wrote != tt.enabled {
				t.Errorf("spinner wrote message = %v, want %v", wrote, tt.enabled)
			}
		})
	}
}
