package fdc

// motorAction tags what the motor state machine still needs to do
// before a tick may fall through to the current command's handler
// (§4.8 step 1).
type motorAction int

const (
	motorActionNone motorAction = iota
	motorActionUnload
)

// motorState is §4.9's State: motor-loaded, head-loaded, and whatever
// action is queued up. Per-drive head position lives on drive, not
// here, since it must survive across drive-select changes.
type motorState struct {
	loaded        bool
	headLoaded    bool
	pendingAction motorAction
}

func (m *motorState) hasWork() bool {
	return m.pendingAction != motorActionNone
}

// stepMotor executes one motor-state-machine step, per §4.8 step 1.
func (c *Controller) stepMotor() {
	switch c.motor.pendingAction {
	case motorActionUnload:
		c.motor.loaded = false
		c.motor.headLoaded = false
		c.regs.Select0 = false
		c.regs.Select1 = false
		if c.sink != nil {
			c.sink.MotorOff()
			c.sink.HeadUnload()
		}
	}
	c.motor.pendingAction = motorActionNone
}

// armHeadUnload schedules the ≈2s head-unload trigger described in
// §4.2 and §4.9.
func (c *Controller) armHeadUnload() {
	c.motor.pendingAction = motorActionUnload
	c.trigger.Arm(c.clock, headUnloadCycles)
}

// onCommandStart plays the head-load/motor-on cues the first time a
// command runs after the drive was idle, per §4.9's "first command
// after idle plays head-load".
func (c *Controller) onCommandStart() {
	if !c.motor.loaded {
		c.motor.loaded = true
		if c.sink != nil {
			c.sink.MotorOn()
		}
	}
	if !c.motor.headLoaded {
		c.motor.headLoaded = true
		if c.sink != nil {
			c.sink.HeadLoad()
		}
	}
}

// noteSeek plays a step or seek cue when the head's position for the
// given drive changes, and updates the drive's tracked head position.
// A one-track move is a "step"; anything larger is a "seek", per §4.9.
func (c *Controller) noteSeek(driveIdx int, newTrack int) {
	if driveIdx < 0 || driveIdx >= driveCount {
		return
	}
	d := &c.drives[driveIdx]
	delta := newTrack - d.headPosition
	if delta == 0 {
		return
	}
	if c.sink != nil {
		if delta == 1 || delta == -1 {
			c.sink.Step(driveIdx)
		} else {
			c.sink.Seek(driveIdx, delta)
		}
	}
	d.headPosition = newTrack
}
