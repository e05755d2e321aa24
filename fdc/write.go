package fdc

import "github.com/beebem-go/disc8271/discimg"

// setupWrite implements §4.5's write setup: it mirrors setupRead but
// additionally checks writability.
func setupWrite(c *Controller) {
	trackParam := c.regs.Params[0]
	sectorParam := c.regs.Params[1]
	sizeByte := c.regs.Params[2]

	drive, disc, track, idx, ok := c.prepareTransferSetup(trackParam, sectorParam)
	if !ok {
		return
	}
	_ = drive

	if !disc.Writable {
		c.postError(ResultWriteProtect)
		return
	}

	count := int(sizeByte & 0x1F)
	if count == 0 {
		count = 0x20
	}
	sizeCode := (sizeByte >> 5) & 0x07
	sectorLen := 1 << (7 + int(sizeCode))

	c.transfer.TrackAddr = trackParam
	c.transfer.SectorID = sectorParam
	c.transfer.SectorLen = sectorLen
	c.transfer.SectorsToGo = count
	c.transfer.CurrentSectorIdx = idx
	c.transfer.HasSector = true
	c.transfer.ByteWithinSector = 0
	c.transfer.FirstWriteInterrupt = true

	_ = track

	c.regs.Status = StatusCommandBusy
	c.trigger.Arm(c.clock, readWriteByteCycles)
}

// tickWrite implements §4.5's write tick: the first tick issues an
// interrupt requesting the first byte without consuming one; subsequent
// ticks store data_register into the sector and advance.
func tickWrite(c *Controller) {
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
	sector := &track.Sectors[c.transfer.CurrentSectorIdx]

	if c.transfer.FirstWriteInterrupt {
		c.transfer.FirstWriteInterrupt = false
	} else {
		byteIdx := c.transfer.ByteWithinSector
		if byteIdx < len(sector.Data) {
			sector.Data[byteIdx] = c.regs.Data
		}
		c.transfer.ByteWithinSector++
	}

	c.regs.Result = byte(ResultSuccess)

	if !c.transfer.FirstWriteInterrupt && c.transfer.ByteWithinSector >= c.transfer.SectorLen {
		c.transfer.ByteWithinSector = 0
		c.transfer.SectorsToGo--

		if c.transfer.SectorsToGo > 0 {
			nextID := sector.ID.LogicalSector + 1
			idx, found := c.sectorByID(track, nextID)
			if !found {
				c.postError(ResultDriveNotPresent)
				return
			}
			c.transfer.CurrentSectorIdx = idx
		} else {
			if err := discimg.SaveTrack(disc, c.transfer.CurrentHead, c.transfer.CurrentPhysicalTrack); err != nil {
				c.postError(ResultWriteProtect)
				return
			}
			c.regs.Status = StatusResultFull
			c.updateNMI()
			c.transfer.SectorsToGo = -1
			c.trigger.Arm(c.clock, 0)
			return
		}
	}

	c.regs.Status = StatusCommandBusy | StatusInterruptRequest | StatusNonDMAMode
	c.updateNMI()
	c.trigger.Arm(c.clock, readWriteByteCycles)
}
