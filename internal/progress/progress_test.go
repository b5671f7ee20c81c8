package progress

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPublishNotifiesSubscribers(t *testing.T) {
	r := NewReporter()
	ch := r.Subscribe()

	r.Publish(Update{Phase: PhaseMoving, Done: 1, Total: 2})

	select {
	case u := <-ch:
		if u.Done != 1 || u.Total != 2 {
			t.Errorf("received %+v", u)
		}
	default:
		t.Fatal("subscriber did not receive the update")
	}

	current, ok := r.Current()
	if !ok || current.Phase != PhaseMoving {
		t.Errorf("Current() = %+v, %v", current, ok)
	}
}

func TestPublishDoesNotBlock(t *testing.T) {
	r := NewReporter()
	_ = r.Subscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			r.Publish(Update{Phase: PhaseMoving, Done: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	r := NewReporter()
	ch := r.Subscribe()
	r.Unsubscribe(ch)

	if _, ok := <-ch; ok {
		t.Error("expected closed channel")
	}

	// publishing after unsubscribe must not panic
	r.Publish(Update{Phase: PhaseComplete})
}

func TestCurrentBeforePublish(t *testing.T) {
	if _, ok := NewReporter().Current(); ok {
		t.Error("expected no update before the first publish")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		update Update
		want   string
	}{
		{"provisioning", Update{Phase: PhaseProvisioning, Folder: "Notes"}, "Preparing folder Notes"},
		{"moving", Update{Phase: PhaseMoving, Done: 1, Total: 4, MovedBytes: 2048}, "1/4 files (25%)"},
		{"complete", Update{Phase: PhaseComplete, Moved: 3, Failed: 1, StartTime: time.Now()}, "3 moved, 1 failed"},
		{"error", Update{Phase: PhaseError, Error: errors.New("boom")}, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.update); !strings.Contains(got, tt.want) {
				t.Errorf("Format() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		3 * time.Second:                  "3s",
		90 * time.Second:                 "1m30s",
		time.Hour + 2*time.Minute + 1500: "1h2m0s",
	}
	for d, want := range tests {
		if got := FormatDuration(d); got != want {
			t.Errorf("FormatDuration(%v) = %s, want %s", d, got, want)
		}
	}
}
