package fdc

// setupSeek implements §4.6's Seek: it latches the target track into
// the selected surface's current-track register and the shared
// positioning state, and arms a short-delay success interrupt.
func setupSeek(c *Controller) {
	drive := c.selectedDrive()
	if drive < 0 {
		c.postError(ResultDriveNotReady)
		return
	}

	target := c.regs.Params[0]
	c.regs.CurrentTrack[drive] = target

	c.pos.PhysicalTrack = target
	c.pos.LogicalTrack = target
	c.pos.UsingSpecial = false
	c.pos.PositionInTrack = 0
	c.pos.Drdsc = 0

	c.noteSeek(drive, int(target))

	c.regs.Status = StatusCommandBusy
	c.trigger.Arm(c.clock, errorPostDelayCycles)
}

// tickSeek completes the Seek in a single tick.
func tickSeek(c *Controller) {
	c.regs.Result = byte(ResultSuccess)
	c.regs.Status = StatusResultFull
	c.updateNMI()
}
