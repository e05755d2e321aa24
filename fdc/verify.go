package fdc

// setupVerify implements §4.6's Verify Data setup: it resolves a single
// sector the same way Read does but never transfers a data byte, and
// schedules exactly one short-delay interrupt — there is no record
// count parameter, unlike Read and Write.
func setupVerify(c *Controller) {
	trackParam := c.regs.Params[0]
	sectorParam := c.regs.Params[1]

	_, _, track, idx, ok := c.prepareTransferSetup(trackParam, sectorParam)
	if !ok {
		return
	}

	c.transfer.SectorsToGo = 1
	c.transfer.CurrentSectorIdx = idx
	c.transfer.HasSector = true
	c.transfer.ByteWithinSector = 0

	c.regs.Result = track.Sectors[idx].Error
	c.regs.Status = StatusCommandBusy
	c.trigger.Arm(c.clock, errorPostDelayCycles)
}

// tickVerify implements §4.6's single short-delay interrupt: the
// sector's stored error code that setupVerify placed in Result is
// overwritten with success and the result is posted.
func tickVerify(c *Controller) {
	if c.transfer.SectorsToGo < 0 {
		c.regs.Status = StatusResultFull | StatusInterruptRequest
		c.updateNMI()
		return
	}

	disc := c.currentDisc()
	if disc == nil {
		c.postError(ResultDriveNotReady)
		return
	}
	track := disc.TrackAt(c.transfer.CurrentHead, c.transfer.CurrentPhysicalTrack)
	if track == nil {
		c.postError(ResultSectorNotFound)
		return
	}

	c.regs.Result = byte(ResultSuccess)
	c.regs.Status = StatusResultFull
	c.updateNMI()
	c.transfer.SectorsToGo = -1
	c.trigger.Arm(c.clock, 0)
}
