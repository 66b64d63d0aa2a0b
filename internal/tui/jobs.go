package tui

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type jobKind string

type jobStatus string

const (
	jobKindLogin        jobKind = "login"
	jobKindRegister     jobKind = "register"
	jobKindChat         jobKind = "chat"
	jobKindResetRequest jobKind = "reset-request"
	jobKindResetConfirm jobKind = "reset-confirm"
)

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
)

type jobSnapshot struct {
	ID          string
	Kind        jobKind
	Mount       int
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
	Duration    time.Duration
}

// jobResultEnvelope carries a job's payload back to the Update loop, tagged
// with the mount that started it.
type jobResultEnvelope struct {
	Snapshot jobSnapshot
	Payload  tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

// jobBus tracks in-flight API calls. Start and Finish run on the Update
// loop only; the returned command runs on its own goroutine and touches
// nothing but its captured values.
type jobBus struct {
	counter int64
	running map[string]jobSnapshot
}

func newJobBus() *jobBus {
	return &jobBus{running: map[string]jobSnapshot{}}
}

func (b *jobBus) nextID(kind jobKind) string {
	idx := atomic.AddInt64(&b.counter, 1)
	return fmt.Sprintf("%s-%d", kind, idx)
}

func (b *jobBus) Start(kind jobKind, mount int, runner jobRunner) tea.Cmd {
	id := b.nextID(kind)
	started := time.Now()
	b.running[id] = jobSnapshot{ID: id, Kind: kind, Mount: mount, Status: jobStatusRunning, StartedAt: started}

	return func() tea.Msg {
		payload, err := runner(context.Background())
		snapshot := jobSnapshot{
			ID:          id,
			Kind:        kind,
			Mount:       mount,
			StartedAt:   started,
			CompletedAt: time.Now(),
		}
		if err != nil {
			snapshot.Status = jobStatusFailed
			snapshot.Err = err.Error()
		} else {
			snapshot.Status = jobStatusSucceeded
		}
		snapshot.Duration = snapshot.CompletedAt.Sub(started)
		log.Printf("[jobs] %s %s (mount=%d, duration=%s, err=%v)", kind, snapshot.Status, mount, snapshot.Duration, err)
		return jobResultEnvelope{Snapshot: snapshot, Payload: payload}
	}
}

func (b *jobBus) Finish(snapshot jobSnapshot) {
	delete(b.running, snapshot.ID)
}

func (b *jobBus) Running() int {
	return len(b.running)
}
