// Package sched holds the controller's single-scalar cooperative
// scheduler: the "next event cycle" trigger described in SPEC_FULL.md
// §4.8, and the deferred-error tagged union described in §9.
//
// This is a deliberate simplification of the teacher's events/event
// sorted linked-list queue (see DESIGN.md): the 8271's own command
// state machine only ever needs one pending wakeup at a time, so a
// single scalar plus an armed flag replaces the multi-event queue
// the teacher needed to track several independent disk events
// (eventDiskDone, eventDiskLostData, eventDiskFirstDrq) concurrently.
package sched

// Never is the sentinel cycle value meaning "no pending work". Trigger
// does not store it; an unarmed Trigger is marked by its armed flag.
const Never uint64 = ^uint64(0)

// Trigger holds the absolute emulated cycle the owner next needs
// attention at, and whether it is armed at all.
type Trigger struct {
	cycle uint64
	armed bool
}

// Arm schedules the trigger for deltaCycles after now.
func (t *Trigger) Arm(now uint64, deltaCycles uint64) {
	t.cycle = now + deltaCycles
	t.armed = true
}

// ArmAt schedules the trigger for an absolute cycle.
func (t *Trigger) ArmAt(cycle uint64) {
	t.cycle = cycle
	t.armed = true
}

// Clear disarms the trigger.
func (t *Trigger) Clear() {
	t.armed = false
}

// Pending reports whether the trigger is armed.
func (t *Trigger) Pending() bool {
	return t.armed
}

// Due reports whether the trigger is armed and now has reached it.
func (t *Trigger) Due(now uint64) bool {
	return t.armed && now >= t.cycle
}

// At returns the armed cycle and whether one is set.
func (t *Trigger) At() (uint64, bool) {
	return t.cycle, t.armed
}

// PendingKind tags what kind of deferred outcome next_interrupt_is_err
// represents (§9's "Deferred-error channel" design note).
type PendingKind int

const (
	// PendingNone means no deferred error is outstanding; the tick
	// handler for the current command should run normally.
	PendingNone PendingKind = iota
	// PendingError means a command-level error is outstanding and
	// should be posted as the final result on the next tick.
	PendingError
	// PendingContinue corresponds to the source's sentinel set
	// {success, data-CRC, deleted-found}: these are not "errors" for
	// dispatch purposes, and the current command's own tick handler
	// should run instead.
	PendingContinue
)

// Pending is the tagged union replacing the source's overloaded single
// byte NextInterruptIsErr.
type Pending struct {
	Kind PendingKind
	Code byte
}

// None reports whether this Pending represents "nothing outstanding".
func (p Pending) None() bool {
	return p.Kind == PendingNone
}
