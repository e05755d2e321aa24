package fdc

import "github.com/beebem-go/disc8271/discimg"

// resolveLogicalTrack implements §4.1's get_track_for_logical, honouring
// using_special the way the original's GetTrackPtr does: the scan
// position (pos.PhysicalTrack) only tracks the command's own track
// parameter while pos.UsingSpecial is false — a prior Write Special
// Register to the surface-0 current-track register can point the scan
// position somewhere else entirely, and that diversion must survive
// until a read or seek lands back on the same track. A scan position of
// zero (no prior Seek) falls back to the requested track itself, since
// for flat SSD/DSD images physical track equals logical track by
// construction; landing on it also clears UsingSpecial. At most two
// physical tracks starting there are then searched, matching the
// requested logical track against the first sector's ID field.
func (c *Controller) resolveLogicalTrack(disc *discimg.Disc, head int, trackParam byte) (physicalTrack int, ok bool) {
	if !c.pos.UsingSpecial {
		c.pos.PhysicalTrack = trackParam
	}
	if c.pos.PhysicalTrack == 0 {
		c.pos.PhysicalTrack = trackParam
	}
	if trackParam == c.pos.PhysicalTrack {
		c.pos.UsingSpecial = false
	}

	start := int(c.pos.PhysicalTrack)
	for pt := start; pt < start+2; pt++ {
		if pt < 0 || pt >= discimg.MaxTracks {
			continue
		}
		t := disc.TrackAt(head, pt)
		if t == nil || len(t.Sectors) == 0 {
			continue
		}
		if t.Sectors[0].ID.LogicalTrack == trackParam {
			c.pos.PhysicalTrack = byte(pt)
			return pt, true
		}
	}

	return 0, false
}

// sectorByID implements §4.1's get_sector_by_id: a two-level lookup
// that first scans for an ID-field match starting at
// pos.PositionInTrack and wrapping, then indexes by the matched
// sector's record number. This permits FSD images to describe
// duplicated logical IDs referring to distinct stored sectors.
func (c *Controller) sectorByID(track *discimg.Track, logicalSector byte) (idx int, ok bool) {
	n := len(track.Sectors)
	if n == 0 {
		return 0, false
	}

	start := c.pos.PositionInTrack % n
	if start < 0 {
		start = 0
	}

	match := -1
	for i := 0; i < n; i++ {
		j := (start + i) % n
		if track.Sectors[j].ID.LogicalSector == logicalSector {
			match = j
			break
		}
	}
	if match < 0 {
		return 0, false
	}

	record := track.Sectors[match].RecordNumber
	if record < 0 || record >= n {
		return 0, false
	}

	c.pos.PositionInTrack = record
	return record, true
}

// sectorForReadID implements §4.1's get_sector_for_read_id: Read ID
// reports fields in physical order, so the sector at the current
// rotational position is returned directly, with no ID matching.
func (c *Controller) sectorForReadID(track *discimg.Track) (idx int, ok bool) {
	n := len(track.Sectors)
	if n == 0 {
		return 0, false
	}
	idx = c.pos.PositionInTrack % n
	if idx < 0 {
		idx = 0
	}
	return idx, true
}
