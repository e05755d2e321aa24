package fdc

// idFieldBytes is the per-ID-field transfer cadence: four bytes
// (track, head, sector, size code), each clocked at the normal
// per-byte rate.
const idFieldBytes = 4

// setupReadID implements §4.6's Read ID: it addresses the physical
// track directly by the command's track parameter (matching the
// original's GetTrackPtrPhysical, which indexes the track array by
// physical track number rather than searching for a logical-ID match),
// and reports ID fields in physical (rotational) order starting at
// sector 0 rather than matching against a requested sector. Unlike
// Read/Write/Verify this bypasses resolveLogicalTrack entirely: there is
// no two-track search and no UsingSpecial involvement here.
func setupReadID(c *Controller) {
	drive := c.selectedDrive()
	if drive < 0 {
		c.postError(ResultDriveNotReady)
		return
	}
	disc := c.drives[drive].disc
	if disc == nil {
		c.postError(ResultDriveNotReady)
		return
	}

	trackParam := c.regs.Params[0]
	pt := int(trackParam)
	c.pos.PhysicalTrack = trackParam
	c.pos.PositionInTrack = 0

	track := disc.TrackAt(defaultHead, pt)
	if track == nil || track.NSectors() == 0 {
		c.postError(ResultSectorNotFound)
		return
	}

	count := int(c.regs.Params[2])
	if count == 0 {
		count = 0x20
	}

	c.transfer = transferState{
		CurrentHead:          defaultHead,
		CurrentPhysicalTrack: pt,
		HasTrack:             true,
		SectorsToGo:          count,
	}

	c.noteSeek(drive, pt)

	c.regs.Status = StatusCommandBusy
	c.trigger.Arm(c.clock, readWriteByteCycles*idFieldBytes)
}

// tickReadID implements §4.6's per-field tick: the four ID bytes are
// clocked out in order, and the rotational position advances and wraps
// at NSectors() after each field.
func tickReadID(c *Controller) {
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
	if track == nil || track.NSectors() == 0 {
		c.postError(ResultSectorNotFound)
		return
	}

	idx, _ := c.sectorForReadID(track)
	sector := &track.Sectors[idx]

	var b byte
	switch c.transfer.ByteWithinSector {
	case 0:
		b = sector.ID.LogicalTrack
	case 1:
		b = sector.ID.Head
	case 2:
		b = sector.ID.LogicalSector
	case 3:
		b = sector.ID.SizeCode
	}
	c.regs.Data = b
	c.regs.Result = byte(ResultSuccess)
	c.transfer.ByteWithinSector++

	if c.transfer.ByteWithinSector >= idFieldBytes {
		c.transfer.ByteWithinSector = 0
		c.pos.PositionInTrack = (c.pos.PositionInTrack + 1) % track.NSectors()
		c.transfer.SectorsToGo--

		if c.transfer.SectorsToGo <= 0 {
			c.regs.Status = StatusCommandBusy | StatusResultFull | StatusInterruptRequest | StatusNonDMAMode
			c.updateNMI()
			c.transfer.SectorsToGo = -1
			c.trigger.Arm(c.clock, readWriteByteCycles)
			return
		}
	}

	c.regs.Status = StatusCommandBusy | StatusInterruptRequest | StatusNonDMAMode
	c.updateNMI()
	c.trigger.Arm(c.clock, readWriteByteCycles)
}
