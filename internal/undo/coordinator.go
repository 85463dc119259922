// Package undo implements the single-slot undo window for deleted
// transactions. Deletes are applied to the ledger immediately; the
// coordinator keeps a copy of the most recent deletion for a fixed window,
// during which an explicit undo restores it. Undo is last-delete-wins: a
// new delete during an active window silently forfeits the previous
// deletion's restorability.
package undo

import (
	"sync"
	"time"

	"github.com/yuhsinc/pocket-ledger/internal/model"
)

// DefaultWindow is how long a deletion stays undo-able.
const DefaultWindow = 3000 * time.Millisecond

// Ledger is the slice of the transaction store the coordinator drives.
type Ledger interface {
	Remove(id string)
	Restore(tx model.Transaction)
}

// Snapshot is the coordinator's displayable state.
type Snapshot struct {
	PendingTitle string
	Visible      bool
}

// Coordinator tracks the most recently deleted transaction and its undo
// deadline. The zero state is idle. All methods are safe to call from the
// timer goroutine and the event loop; the mutex is the only coordination
// needed since every transition is a short critical section.
type Coordinator struct {
	ledger  Ledger
	timer   *time.Timer
	pending *model.Transaction
	window  time.Duration
	gen     uint64
	mu      sync.Mutex
}

// NewCoordinator creates an idle coordinator over the given ledger. A
// non-positive window falls back to DefaultWindow.
func NewCoordinator(ledger Ledger, window time.Duration) *Coordinator {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Coordinator{ledger: ledger, window: window}
}

// OnDelete removes tx from the ledger and arms the undo window for it. A
// deletion already pending is discarded without being restored: only the
// newest deletion is ever undo-able.
func (c *Coordinator) OnDelete(tx model.Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelLocked()
	c.ledger.Remove(tx.ID)

	retained := tx
	c.pending = &retained
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.window, func() { c.expire(gen) })
}

// OnUndo restores the pending deletion, if any, and returns it. Invoking
// undo with nothing pending (including the race where the window expired
// just before the keypress) is a no-op.
func (c *Coordinator) OnUndo() (model.Transaction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return model.Transaction{}, false
	}
	tx := *c.pending
	c.cancelLocked()
	c.ledger.Restore(tx)
	return tx, true
}

// Snapshot returns the display state: whether the undo affordance is
// visible and the note of the pending deletion.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return Snapshot{}
	}
	return Snapshot{Visible: true, PendingTitle: c.pending.Note}
}

// Stop cancels any armed timer and discards the pending deletion, making
// it permanent. Used on teardown; stopping an idle coordinator is a no-op.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// expire fires when the window elapses with no undo. The generation guard
// keeps a stale timer from acting after a newer delete replaced the slot.
func (c *Coordinator) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}
	c.pending = nil
	c.timer = nil
}

// cancelLocked stops the timer and clears the slot. Idempotent: cancelling
// an already-fired or already-cancelled timer does nothing.
func (c *Coordinator) cancelLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = nil
	c.gen++
}
