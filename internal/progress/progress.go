package progress

import (
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Phase represents the current phase of an organize run
type Phase string

const (
	PhaseProvisioning Phase = "provisioning"
	PhaseMoving       Phase = "moving"
	PhaseComplete     Phase = "complete"
	PhaseError        Phase = "error"
)

// Update is a snapshot of a running batch
type Update struct {
	RunID       string
	Phase       Phase
	Folder      string // folder being provisioned or moved into
	CurrentFile string
	Done        int // files attempted so far
	Total       int // files eligible in this run
	Moved       int
	Failed      int
	MovedBytes  int64
	StartTime   time.Time
	Error       error
}

// Reporter fans progress updates out to subscribers. Publishing never
// blocks: a subscriber that falls behind misses intermediate updates.
type Reporter struct {
	current   *Update
	mu        sync.RWMutex
	listeners []chan Update
}

// NewReporter creates a new progress reporter
func NewReporter() *Reporter {
	return &Reporter{}
}

// Subscribe returns a channel that receives progress updates
func (r *Reporter) Subscribe() <-chan Update {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan Update, 16)
	r.listeners = append(r.listeners, ch)
	return ch
}

// Unsubscribe closes and removes a listener channel
func (r *Reporter) Unsubscribe(ch <-chan Update) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, listener := range r.listeners {
		if listener == ch {
			close(listener)
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			return
		}
	}
}

// Publish records update as the current state and notifies listeners
func (r *Reporter) Publish(update Update) {
	r.mu.Lock()
	r.current = &update
	listeners := make([]chan Update, len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, listener := range listeners {
		select {
		case listener <- update:
		default:
		}
	}
}

// Current returns the last published update
func (r *Reporter) Current() (Update, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return Update{}, false
	}
	return *r.current, true
}

// Format returns a human-readable progress line
func Format(u Update) string {
	elapsed := time.Since(u.StartTime)

	switch u.Phase {
	case PhaseProvisioning:
		if u.Folder == "" {
			return "Preparing folders..."
		}
		return fmt.Sprintf("Preparing folder %s...", u.Folder)
	case PhaseMoving:
		percentage := 0
		if u.Total > 0 {
			percentage = (u.Done * 100) / u.Total
		}
		return fmt.Sprintf("Moving... %d/%d files (%d%%) - %s moved",
			u.Done,
			u.Total,
			percentage,
			humanize.Bytes(uint64(u.MovedBytes)))
	case PhaseComplete:
		return fmt.Sprintf("Done: %d moved, %d failed (%s) in %s",
			u.Moved,
			u.Failed,
			humanize.Bytes(uint64(u.MovedBytes)),
			FormatDuration(elapsed))
	case PhaseError:
		return fmt.Sprintf("Error: %v", u.Error)
	default:
		return "Preparing..."
	}
}

// FormatDuration formats duration in human-readable format
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
