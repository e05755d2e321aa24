package fdc

import "github.com/beebem-go/disc8271/discimg"

// readWriteByteCycles is the per-byte scheduling cadence for data
// transfer: "one byte every 160 emulated cycles" (§4.5).
const readWriteByteCycles = 160

// head is fixed at 0: neither the Read nor Write parameter set carries
// a side selector (that's a Special Register concern, §4.6), so this
// core only resolves against head 0 of the selected drive's disc. A
// disc with HeadCount==2 (DSD) still stores head-1 tracks; nothing in
// the command parameter set reaches them.
const defaultHead = 0

func (c *Controller) prepareTransferSetup(trackParam, sectorParam byte) (drive int, disc *discimg.Disc, track *discimg.Track, sectorIdx int, ok bool) {
	drive = c.selectedDrive()
	if drive < 0 {
		c.postError(ResultDriveNotReady)
		return drive, nil, nil, 0, false
	}

	disc = c.drives[drive].disc
	if disc == nil {
		c.postError(ResultDriveNotReady)
		return drive, nil, nil, 0, false
	}

	if c.pos.Drdsc > 1 {
		c.pos.PhysicalTrack = 0
	}
	c.pos.Drdsc = 0
	if c.pos.LogicalTrack != trackParam {
		c.pos.PositionInTrack = 0
	}
	c.pos.LogicalTrack = trackParam

	pt, found := c.resolveLogicalTrack(disc, defaultHead, trackParam)
	if !found {
		c.postError(ResultSectorNotFound)
		return drive, disc, nil, 0, false
	}

	track = disc.TrackAt(defaultHead, pt)
	if track == nil || !track.Readable {
		c.postError(ResultSectorNotFound)
		return drive, disc, nil, 0, false
	}

	idx, found := c.sectorByID(track, sectorParam)
	if !found {
		c.postError(ResultSectorNotFound)
		return drive, disc, track, 0, false
	}

	c.noteSeek(drive, pt)
	c.transfer.CurrentHead = defaultHead
	c.transfer.CurrentPhysicalTrack = pt
	c.transfer.HasTrack = true

	return drive, disc, track, idx, true
}

// setupRead implements §4.4's setup for opcodes 0x13 and 0x17.
func setupRead(c *Controller) {
	trackParam := c.regs.Params[0]
	sectorParam := c.regs.Params[1]
	sizeByte := c.regs.Params[2]

	_, _, track, idx, ok := c.prepareTransferSetup(trackParam, sectorParam)
	if !ok {
		return
	}

	count := int(sizeByte & 0x1F)
	if count == 0 {
		count = 0x20
	}
	sizeCode := (sizeByte >> 5) & 0x07
	sectorLen := 1 << (7 + int(sizeCode))

	sector := &track.Sectors[idx]
	overRead := false
	if sectorLen > sector.RealSize {
		sectorLen = sector.RealSize
		overRead = true
	}
	c.pos.SectorOverRead = overRead

	c.transfer.TrackAddr = trackParam
	c.transfer.SectorID = sectorParam
	c.transfer.SectorLen = sectorLen
	c.transfer.SectorsToGo = count
	c.transfer.CurrentSectorIdx = idx
	c.transfer.HasSector = true
	c.transfer.ByteWithinSector = 0

	c.regs.Status = StatusCommandBusy
	c.trigger.Arm(c.clock, readWriteByteCycles)
}

// setupRead128 implements §4.4/§9's 128-byte deleted-data path (opcode
// 0x16): always one 128-byte sector.
func setupRead128(c *Controller) {
	trackParam := c.regs.Params[0]
	sectorParam := c.regs.Params[1]

	_, _, track, idx, ok := c.prepareTransferSetup(trackParam, sectorParam)
	if !ok {
		return
	}

	sector := &track.Sectors[idx]
	const fixedLen = 128
	sectorLen := fixedLen
	overRead := false
	if sectorLen > sector.RealSize {
		sectorLen = sector.RealSize
		overRead = true
	}
	c.pos.SectorOverRead = overRead

	c.transfer.TrackAddr = trackParam
	c.transfer.SectorID = sectorParam
	c.transfer.SectorLen = sectorLen
	c.transfer.SectorsToGo = 1
	c.transfer.CurrentSectorIdx = idx
	c.transfer.HasSector = true
	c.transfer.ByteWithinSector = 0

	c.regs.Status = StatusCommandBusy
	c.trigger.Arm(c.clock, readWriteByteCycles)
}

// computeReadResult implements §4.4's ordered-match result-register
// decision tree for the variable-length read path. Encoded as the
// design note in §9 recommends: an explicit first-match rule over a
// small set of named conditions, rather than nested fallthrough.
func computeReadResult(sector *discimg.Sector, requestedLen int, overRead bool) ResultCode {
	declared := sector.DeclaredSize()
	sizesMismatch := sector.RealSize != requestedLen

	switch {
	case sector.Error == discimg.ErrNone && sizesMismatch:
		return ResultDataCRCError
	case overRead && sector.Error == discimg.ErrNone:
		return ResultDataCRCError
	case overRead && (sector.Error == discimg.ErrDeletedData || sector.Error == discimg.ErrDeletedDataCRC):
		return ResultDeletedDataCRCError
	case sector.Error == discimg.ErrDeletedData && sizesMismatch:
		return ResultDeletedDataCRCError
	case sector.Error == discimg.ErrDeletedDataCRC && declared == requestedLen && !overRead:
		return ResultDeletedDataFound
	case sector.Error == discimg.ErrFSDTrap256:
		if requestedLen == 256 {
			return ResultSuccess
		}
		return ResultDataCRCError
	case sector.Error == discimg.ErrFSDTrap128:
		if requestedLen == 128 {
			return ResultSuccess
		}
		return ResultDataCRCError
	case sector.Error == discimg.ErrDataCRC && sector.RealSize == declared:
		return ResultDataCRCError
	default:
		return ResultCode(sector.Error)
	}
}

// pseudoRandomShift deterministically derives a [0,7] shift amount from
// a byte position, standing in for the source's rand()%8 corruption of
// every 5th byte of a data-CRC-errored sector (§4.4).
func pseudoRandomShift(byteIdx int) uint {
	return uint((byteIdx*2654435761)>>13) & 7
}

// tickRead implements §4.4's per-byte tick for the variable-length read
// path.
func tickRead(c *Controller) {
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

	byteIdx := c.transfer.ByteWithinSector
	var raw byte
	if byteIdx < len(sector.Data) {
		raw = sector.Data[byteIdx]
	}

	if sector.Error == discimg.ErrDataCRC && sector.RealSize == sector.DeclaredSize() && (byteIdx+1)%5 == 0 {
		raw >>= pseudoRandomShift(byteIdx)
	}

	c.regs.Data = raw
	c.regs.Result = byte(computeReadResult(sector, c.transfer.SectorLen, c.pos.SectorOverRead))
	c.transfer.ByteWithinSector++

	if c.transfer.ByteWithinSector >= c.transfer.SectorLen {
		c.transfer.ByteWithinSector = 0
		c.transfer.SectorsToGo--

		if c.transfer.SectorsToGo > 0 {
			nextID := sector.ID.LogicalSector + 1
			idx, found := c.sectorByID(track, nextID)
			if !found {
				c.postError(ResultSectorNotFound)
				return
			}
			c.transfer.CurrentSectorIdx = idx
		} else {
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

// computeRead128Result implements the simplified decision tree for the
// 128-byte path (§9): sector_over_read always forces data-CRC,
// collapsing the deleted-data distinctions the variable-length path
// makes.
func computeRead128Result(sector *discimg.Sector, requestedLen int, overRead bool) ResultCode {
	declared := sector.DeclaredSize()
	switch {
	case sector.Error == discimg.ErrNone && sector.RealSize != requestedLen:
		return ResultDataCRCError
	case overRead:
		return ResultDataCRCError
	case sector.Error == discimg.ErrFSDTrap128:
		if requestedLen == 128 {
			return ResultSuccess
		}
		return ResultDataCRCError
	case sector.Error == discimg.ErrDataCRC && sector.RealSize == declared:
		return ResultDataCRCError
	default:
		return ResultCode(sector.Error)
	}
}

// tickRead128 implements the 128-byte deleted-data read tick.
func tickRead128(c *Controller) {
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

	byteIdx := c.transfer.ByteWithinSector
	var raw byte
	if byteIdx < len(sector.Data) {
		raw = sector.Data[byteIdx]
	}
	if sector.Error == discimg.ErrDataCRC && sector.RealSize == sector.DeclaredSize() && (byteIdx+1)%5 == 0 {
		raw >>= pseudoRandomShift(byteIdx)
	}

	c.regs.Data = raw
	c.regs.Result = byte(computeRead128Result(sector, c.transfer.SectorLen, c.pos.SectorOverRead))
	c.transfer.ByteWithinSector++

	if c.transfer.ByteWithinSector >= c.transfer.SectorLen {
		c.transfer.ByteWithinSector = 0
		c.transfer.SectorsToGo = -1
		c.regs.Status = StatusCommandBusy | StatusResultFull | StatusInterruptRequest | StatusNonDMAMode
		c.updateNMI()
		c.trigger.Arm(c.clock, readWriteByteCycles)
		return
	}

	c.regs.Status = StatusCommandBusy | StatusInterruptRequest | StatusNonDMAMode
	c.updateNMI()
	c.trigger.Arm(c.clock, readWriteByteCycles)
}
