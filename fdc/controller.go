// Package fdc implements the 8271-class Floppy Disc Controller's
// register file, command dispatch table, and timed transfer engine
// described in SPEC_FULL.md §3-§4 and §9-§10.
//
// The controller is a single owned value with explicit lifecycle (New,
// Reset, Tick, ReadRegister, WriteRegister, SaveState, LoadState); it
// carries no package-level mutable state, unlike the teacher's
// process-wide vm singleton.
package fdc

import (
	"github.com/beebem-go/disc8271/discimg"
	"github.com/beebem-go/disc8271/internal/debuglog"
	"github.com/beebem-go/disc8271/sched"
	"github.com/beebem-go/disc8271/soundsink"
)

// driveCount is the number of physical drives this controller exposes,
// matching the BBC Micro's 1772/8271 host interface (two drive-select
// bits).
const driveCount = 2

// headUnloadCycles is how long the head stays loaded with no further
// work before an unload is scheduled (§4.2, "≈4,000,000 emulated
// cycles ≈ 2 s").
const headUnloadCycles = 4_000_000

// errorPostDelayCycles is the short delay used to surface a
// command-level error (§7, "≈50 cycles").
const errorPostDelayCycles = 50

// drive holds one physical drive's mounted disc and the head position
// the motor model tracks for sound-cue purposes. This is deliberately
// separate from positioningState.PhysicalTrack, which is shared across
// drive selection per §9's open question.
type drive struct {
	disc         *discimg.Disc
	headPosition int
}

// Controller is the 8271 FDC core: register file, transfer state,
// positioning state, the two drives, the motor/head model, and the
// single-scalar scheduler.
type Controller struct {
	regs registers

	transfer transferState
	pos      positioningState

	drives [driveCount]drive

	motor motorState

	trigger sched.Trigger
	pending sched.Pending

	currentEntry *commandEntry

	clock uint64

	nmiLine bool
	enabled bool

	everReset bool

	sink soundsink.DriveSoundSink
}

// New returns a freshly constructed, un-reset controller. Callers
// should call Reset before use; New itself performs no I/O and arms no
// triggers, matching the teacher's separation between struct
// construction and diskInit/reset.
func New(sink soundsink.DriveSoundSink) *Controller {
	return &Controller{enabled: true, sink: sink}
}

// SetSink replaces the drive-sound-sink collaborator. A nil sink is
// legal; the motor model silently skips cue delivery.
func (c *Controller) SetSink(sink soundsink.DriveSoundSink) {
	c.sink = sink
}

// LoadDisc mounts d into the given drive (0 or 1), replacing whatever
// was there.
func (c *Controller) LoadDisc(drive int, d *discimg.Disc) {
	c.drives[drive].disc = d
	c.drives[drive].headPosition = 0
}

// EjectDisc unmounts the disc in the given drive, if any.
func (c *Controller) EjectDisc(drive int) {
	c.drives[drive].disc = nil
}

// SetWritable runs the catalogue validator (§4.7) before toggling a
// mounted disc's writability; an inconsistent catalogue only produces a
// logged warning, never a refusal, per §4.7's "warns but still allows".
func (c *Controller) SetWritable(drive int, writable bool) {
	d := c.drives[drive].disc
	if d == nil {
		return
	}
	if writable {
		if err := discimg.ValidateForWrite(d); err != nil {
			debuglog.Printf(debuglog.ImageIO, "SetWritable(drive=%d): %v (allowing anyway)", drive, err)
		}
	}
	d.Writable = writable
}

// selectedDrive returns the index of the currently selected drive. Per
// §3's invariant, if both select bits are set, drive 0 wins.
func (c *Controller) selectedDrive() int {
	if c.regs.Select0 {
		return 0
	}
	if c.regs.Select1 {
		return 1
	}
	return -1
}

// currentDisc returns the disc mounted in the currently selected drive,
// or nil if no drive is selected or it is empty.
func (c *Controller) currentDisc() *discimg.Disc {
	drv := c.selectedDrive()
	if drv < 0 {
		return nil
	}
	return c.drives[drv].disc
}

// Reset implements §4.10. On the very first reset only, the entire
// disc-image matrix (both drives) is ejected, matching the source's
// one-time zero-init of the image arrays.
func (c *Controller) Reset() {
	c.regs.Result = 0
	c.regs.Status = 0
	c.regs.ScanSector = 0
	c.regs.ScanCount = 0
	c.regs.Mode = 0
	c.regs.CurrentTrack = [2]byte{}
	c.regs.Select0 = false
	c.regs.Select1 = false
	c.regs.DriveControlOutput = 0
	c.regs.DriveControlInput = 0
	c.regs.BadTrack = [2][2]byte{{0xFF, 0xFF}, {0xFF, 0xFF}}

	// Acorn defaults.
	c.regs.StepRate = 12
	c.regs.HeadSettle = 10
	c.regs.IndexCount = 12
	c.regs.HeadLoadTime = 8

	c.transfer = transferState{}
	c.pos = positioningState{}
	c.currentEntry = nil

	c.trigger.Clear()
	c.pending = sched.Pending{}

	if c.motor.loaded {
		c.armHeadUnload()
	}

	if !c.everReset {
		for i := range c.drives {
			c.drives[i] = drive{}
		}
		c.everReset = true
	}

	debuglog.Printf(debuglog.FDC, "Reset()")
}

// ReadRegister implements §4.2's read side and §6's "outside {0,1,4}"
// rule.
func (c *Controller) ReadRegister(offset int) byte {
	switch offset {
	case OffsetStatus:
		return c.regs.Status
	case OffsetResult:
		result := c.regs.Result
		c.regs.Status &^= StatusResultFull | StatusInterruptRequest
		c.regs.Result = 0
		return result
	case OffsetData:
		data := c.regs.Data
		c.regs.Status &^= StatusInterruptRequest | StatusNonDMAMode
		return data
	default:
		if c.enabled {
			return 0
		}
		return 0xFF
	}
}

// WriteRegister implements §4.2's write side.
func (c *Controller) WriteRegister(offset int, value byte) {
	switch offset {
	case OffsetStatus:
		c.writeCommand(value)
	case OffsetResult:
		c.writeParam(value)
	case OffsetReset:
		c.Reset()
	case OffsetData:
		c.regs.Data = value
		c.regs.Status &^= StatusInterruptRequest | StatusNonDMAMode
	}

	c.scheduleHeadUnloadIfIdle()
}

// writeCommand latches a new command opcode, per §4.2/§4.3.
func (c *Controller) writeCommand(raw byte) {
	c.regs.Select1 = raw&0x80 != 0
	c.regs.Select0 = raw&0x40 != 0
	c.regs.DriveControlOutput = (c.regs.DriveControlOutput &^ 0xC0) | (raw & 0xC0)

	entry := lookupCommand(raw)

	c.regs.Command = raw
	c.regs.ParamsReceived = 0
	c.regs.ParamCount = entry.paramCount
	c.currentEntry = entry

	c.regs.Status |= StatusCommandBusy | StatusResultFull

	debuglog.Printf(debuglog.FDC, "writeCommand(%#02x) -> %s", raw, entry.name)

	c.onCommandStart()

	if entry.paramCount == 0 {
		c.regs.Status &= 0x7E
		c.runSetup(entry)
	}
}

// runSetup invokes a command's setup handler. A head unload queued by an
// earlier register write is cancelled first, so the trigger the setup
// handler arms drives the command rather than the motor model; if the
// setup arms nothing, WriteRegister queues the unload again.
func (c *Controller) runSetup(entry *commandEntry) {
	if c.motor.pendingAction == motorActionUnload {
		c.motor.pendingAction = motorActionNone
		c.trigger.Clear()
	}
	entry.setup(c)
}

// writeParam appends one parameter byte, per §4.2.
func (c *Controller) writeParam(value byte) {
	c.regs.Status &^= 0x01

	if c.regs.ParamsReceived < len(c.regs.Params) {
		c.regs.Params[c.regs.ParamsReceived] = value
	}
	c.regs.ParamsReceived++

	if c.currentEntry != nil && c.regs.ParamsReceived >= c.regs.ParamCount {
		c.regs.Status &^= StatusCommandBusy
		c.runSetup(c.currentEntry)
	}
}

// scheduleHeadUnloadIfIdle implements §4.2's "every host register write
// additionally schedules a head-unload trigger if the drive motor is on
// and no other event is pending".
func (c *Controller) scheduleHeadUnloadIfIdle() {
	if c.motor.loaded && !c.trigger.Pending() {
		c.armHeadUnload()
	}
}

// postError arms the deferred-error channel described in §7 and §9: the
// code is classified against the source's sentinel set, and a
// short-delay trigger is armed so the next Tick converts it into a
// posted result.
func (c *Controller) postError(code ResultCode) {
	kind := sched.PendingError
	if isContinueSentinel(code) {
		kind = sched.PendingContinue
	}
	c.pending = sched.Pending{Kind: kind, Code: byte(code)}
	c.regs.Status |= StatusCommandBusy
	c.trigger.Arm(c.clock, errorPostDelayCycles)
}

// Tick implements §4.8's tick entry point. Callers must only invoke it
// when the trigger is due.
func (c *Controller) Tick(now uint64) {
	c.clock = now
	c.trigger.Clear()

	if c.motor.hasWork() {
		c.stepMotor()
		return
	}

	c.regs.Status |= StatusInterruptRequest
	c.updateNMI()

	switch c.pending.Kind {
	case sched.PendingError:
		c.regs.Result = c.pending.Code
		c.regs.Status = StatusResultFull | StatusInterruptRequest
		c.pending = sched.Pending{}
		c.updateNMI()
	default:
		if c.currentEntry != nil && c.currentEntry.tick != nil {
			c.currentEntry.tick(c)
		}
	}

	if !c.trigger.Pending() {
		c.scheduleHeadUnloadIfIdle()
	}
}

// updateNMI mirrors the status interrupt-request bit onto the
// host-visible NMI line, matching the teacher's
// diskIntrqInterrupt/UpdateNMIStatus pattern.
func (c *Controller) updateNMI() {
	c.nmiLine = c.regs.Status&StatusInterruptRequest != 0
}

// NMI reports the controller's current NMI output line state.
func (c *Controller) NMI() bool {
	return c.nmiLine
}

// Trigger exposes the absolute cycle the controller next needs
// attention at, for an external scheduler to poll.
func (c *Controller) Trigger() (cycle uint64, armed bool) {
	return c.trigger.At()
}

func logDispatch(c *Controller, format string, args ...interface{}) {
	debuglog.Printf(debuglog.FDC, format, args...)
}
