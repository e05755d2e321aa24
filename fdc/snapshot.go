package fdc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// snapshotPathSize is the fixed, NUL-padded width of each drive's
// backing file path in the persisted chunk (§6).
const snapshotPathSize = 256

// SaveState encodes the controller's persisted snapshot chunk described
// in §6: both drive file paths, the trigger (relative to the
// controller's current cycle), the register file, parameter buffer,
// transfer state, and per-drive writability/head-count. Field order is
// fixed and little-endian throughout.
func (c *Controller) SaveState() ([]byte, error) {
	buf := new(bytes.Buffer)

	for i := range c.drives {
		var path [snapshotPathSize]byte
		if d := c.drives[i].disc; d != nil {
			copy(path[:], d.Path)
		}
		if _, err := buf.Write(path[:]); err != nil {
			return nil, err
		}
	}

	cycle, armed := c.trigger.At()
	var delta int64
	if armed {
		delta = int64(cycle - c.clock)
	}
	if err := binary.Write(buf, binary.LittleEndian, armed); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, delta); err != nil {
		return nil, err
	}

	fields := []interface{}{
		c.regs.Result,
		c.regs.Status,
		c.regs.Data,
		c.regs.Command,
		int32(c.regs.ParamCount),
		int32(c.regs.ParamsReceived),
		c.regs.Params,
		c.regs.Select0,
		c.regs.Select1,
		c.regs.ScanSector,
		c.regs.ScanCount,
		c.regs.Mode,
		c.regs.CurrentTrack,
		c.regs.DriveControlOutput,
		c.regs.DriveControlInput,
		c.regs.BadTrack,
		c.regs.StepRate,
		c.regs.HeadSettle,
		c.regs.IndexCount,
		c.regs.HeadLoadTime,

		c.transfer.TrackAddr,
		c.transfer.SectorID,
		int32(c.transfer.SectorLen),
		int32(c.transfer.SectorsToGo),
		int32(c.transfer.CurrentHead),
		int32(c.transfer.CurrentPhysicalTrack),
		c.transfer.HasTrack,
		int32(c.transfer.CurrentSectorIdx),
		c.transfer.HasSector,
		int32(c.transfer.ByteWithinSector),
		c.transfer.FirstWriteInterrupt,

		c.pos.PhysicalTrack,
		c.pos.LogicalTrack,
		int32(c.pos.PositionInTrack),
		c.pos.UsingSpecial,
		int32(c.pos.Drdsc),
		c.pos.SectorOverRead,
	}
	for _, f := range fields {
		if err := binary.Write(buf, binary.LittleEndian, f); err != nil {
			return nil, err
		}
	}

	for i := range c.drives {
		writable := false
		headCount := int32(0)
		if d := c.drives[i].disc; d != nil {
			writable = d.Writable
			headCount = int32(d.HeadCount)
		}
		if err := binary.Write(buf, binary.LittleEndian, writable); err != nil {
			return nil, err
		}
		if err := binary.Write(buf, binary.LittleEndian, headCount); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// LoadState decodes a chunk produced by SaveState. It restores the
// register file, transfer state, positioning state, and trigger; it
// does not reload disc images — callers must re-mount each drive's path
// themselves (image loading is a Go-level operation with its own error
// path, not something this chunk format re-runs implicitly).
func (c *Controller) LoadState(data []byte) error {
	r := bytes.NewReader(data)

	var paths [driveCount][snapshotPathSize]byte
	for i := range paths {
		if _, err := r.Read(paths[i][:]); err != nil {
			return fmt.Errorf("fdc: reading drive path %d: %w", i, err)
		}
	}

	var armed bool
	var delta int64
	if err := binary.Read(r, binary.LittleEndian, &armed); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &delta); err != nil {
		return err
	}

	var paramCount, paramsReceived int32
	if err := binary.Read(r, binary.LittleEndian, &c.regs.Result); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.Status); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.Data); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.Command); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &paramCount); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &paramsReceived); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.Params); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.Select0); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.Select1); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.ScanSector); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.ScanCount); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.Mode); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.CurrentTrack); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.DriveControlOutput); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.DriveControlInput); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.BadTrack); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.StepRate); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.HeadSettle); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.IndexCount); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.regs.HeadLoadTime); err != nil {
		return err
	}
	c.regs.ParamCount = int(paramCount)
	c.regs.ParamsReceived = int(paramsReceived)

	var sectorLen, sectorsToGo, curHead, curTrack, curSectorIdx, byteWithin int32
	if err := binary.Read(r, binary.LittleEndian, &c.transfer.TrackAddr); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.transfer.SectorID); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &sectorLen); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &sectorsToGo); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &curHead); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &curTrack); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.transfer.HasTrack); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &curSectorIdx); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.transfer.HasSector); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &byteWithin); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.transfer.FirstWriteInterrupt); err != nil {
		return err
	}
	c.transfer.SectorLen = int(sectorLen)
	c.transfer.SectorsToGo = int(sectorsToGo)
	c.transfer.CurrentHead = int(curHead)
	c.transfer.CurrentPhysicalTrack = int(curTrack)
	c.transfer.CurrentSectorIdx = int(curSectorIdx)
	c.transfer.ByteWithinSector = int(byteWithin)

	var positionInTrack, drdsc int32
	if err := binary.Read(r, binary.LittleEndian, &c.pos.PhysicalTrack); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.pos.LogicalTrack); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &positionInTrack); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.pos.UsingSpecial); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &drdsc); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &c.pos.SectorOverRead); err != nil {
		return err
	}
	c.pos.PositionInTrack = int(positionInTrack)
	c.pos.Drdsc = int(drdsc)

	for i := range c.drives {
		var writable bool
		var headCount int32
		if err := binary.Read(r, binary.LittleEndian, &writable); err != nil {
			return err
		}
		if err := binary.Read(r, binary.LittleEndian, &headCount); err != nil {
			return err
		}
		if d := c.drives[i].disc; d != nil {
			d.Writable = writable
			d.HeadCount = int(headCount)
		}
	}

	if armed {
		c.trigger.ArmAt(c.clock + uint64(delta))
	} else {
		c.trigger.Clear()
	}

	return nil
}
