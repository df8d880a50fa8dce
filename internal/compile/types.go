package compile

import (
	"sync"
	"time"
)

// Stage describes a high-level pipeline phase.
type Stage string

const (
	// StageRead is the input reading stage.
	StageRead Stage = "read"
	// StageTarget is the target binding and IR compilation stage.
	StageTarget Stage = "target"
	// StagePayload is the payload assembly stage.
	StagePayload Stage = "payload"
	// StageWrite is the output writing stage.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the task is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the task is currently working.
	StatusWorking Status = "working"
	// StatusDone indicates the task is done.
	StatusDone Status = "done"
	// StatusError indicates the task encountered an error.
	StatusError Status = "error"
)

// Event reports progress for one input (or for the overall run when File is
// empty).
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel, for the terminal UI. Once
// Done is closed the sink discards events instead of sending, so producers
// never block on a receiver that has gone away.
type ChannelSink struct {
	Ch   chan<- Event
	Done <-chan struct{}
}

// OnEvent implements ProgressSink.
func (s ChannelSink) OnEvent(ev Event) {
	if s.Ch == nil {
		return
	}
	if s.Done == nil {
		s.Ch <- ev
		return
	}
	select {
	case <-s.Done:
	case s.Ch <- ev:
	}
}

// Timings records per-stage durations for one compilation.
type Timings struct {
	mu     sync.Mutex
	stages map[Stage]time.Duration
}

// Set records the duration of a stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	t.mu.Lock()
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
	t.stages[stage] = dur
	t.mu.Unlock()
}

// Has reports whether the stage was recorded.
func (t *Timings) Has(stage Stage) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration of a stage.
func (t *Timings) Duration(stage Stage) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stages[stage]
}

// Sum returns the combined duration of the given stages.
func (t *Timings) Sum(stages ...Stage) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
