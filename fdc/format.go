package fdc

import "github.com/beebem-go/disc8271/discimg"

// formatGapCycles is the inter-sector gap cadence Format uses instead
// of the normal per-byte cadence (§4.5: "160×256 cycles between
// sectors").
const formatGapCycles = readWriteByteCycles * 256

// setupFormat implements §4.5's Format setup: only the common 10×256
// geometry is supported; anything else fails with drive-not-present as
// a stand-in for "not supported".
func setupFormat(c *Controller) {
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
	if !disc.Writable {
		c.postError(ResultWriteProtect)
		return
	}

	trackParam := c.regs.Params[0]
	pt := int(trackParam)
	if pt < 0 || pt >= discimg.MaxTracks {
		c.postError(ResultDriveNotReady)
		return
	}

	countSize := c.regs.Params[2]
	count := int(countSize & 0x1F)
	sizeCode := (countSize >> 5) & 0x07
	sectorLen := 1 << (7 + int(sizeCode))

	if count != discimg.SectorsPerTrack || sectorLen != discimg.SSDBytesPerSector {
		c.postError(ResultDriveNotPresent)
		return
	}

	track := disc.TrackAt(defaultHead, pt)
	if track == nil {
		c.postError(ResultDriveNotReady)
		return
	}

	if len(track.Sectors) != count {
		track.Sectors = make([]discimg.Sector, count)
		for i := range track.Sectors {
			track.Sectors[i] = discimg.Sector{
				ID: discimg.IDField{
					LogicalTrack:  trackParam,
					Head:          defaultHead,
					LogicalSector: byte(i),
					SizeCode:      1,
				},
				PhysicalTrack: trackParam,
				RecordNumber:  i,
				RealSize:      sectorLen,
				Data:          make([]byte, sectorLen),
			}
		}
	}
	track.Readable = true
	track.LogicalSectors = count

	c.transfer = transferState{
		TrackAddr:            trackParam,
		CurrentHead:          defaultHead,
		CurrentPhysicalTrack: pt,
		HasTrack:             true,
		CurrentSectorIdx:     0,
		HasSector:            true,
		SectorsToGo:          count,
		FirstWriteInterrupt:  true,
	}

	c.noteSeek(drive, pt)

	c.regs.Status = StatusCommandBusy
	c.trigger.Arm(c.clock, readWriteByteCycles)
}

// tickFormat implements §4.5's Format tick: the first 4 bytes per
// sector are counted as ID-field bytes (not rewritten, per the core's
// simplification), then the sector's data buffer is overwritten with
// 0xE5 and the command advances.
func tickFormat(c *Controller) {
	if c.transfer.SectorsToGo < 0 {
		c.regs.Status = StatusResultFull | StatusInterruptRequest
		c.updateNMI()
		return
	}

	if c.transfer.FirstWriteInterrupt {
		c.transfer.FirstWriteInterrupt = false
	} else {
		c.transfer.ByteWithinSector++
	}

	c.regs.Result = byte(ResultSuccess)

	if c.transfer.ByteWithinSector >= 4 {
		disc := c.currentDisc()
		if disc == nil {
			c.postError(ResultDriveNotReady)
			return
		}
		track := disc.TrackAt(c.transfer.CurrentHead, c.transfer.CurrentPhysicalTrack)
		sector := &track.Sectors[c.transfer.CurrentSectorIdx]
		for i := range sector.Data {
			sector.Data[i] = 0xE5
		}
		sector.Error = discimg.ErrNone
		c.transfer.ByteWithinSector = 0
		c.transfer.SectorsToGo--

		if c.transfer.SectorsToGo > 0 {
			c.transfer.CurrentSectorIdx++
			c.regs.Status = StatusCommandBusy | StatusInterruptRequest | StatusNonDMAMode
			c.updateNMI()
			c.trigger.Arm(c.clock, formatGapCycles)
			return
		}

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

	c.regs.Status = StatusCommandBusy | StatusInterruptRequest | StatusNonDMAMode
	c.updateNMI()
	c.trigger.Arm(c.clock, readWriteByteCycles)
}
