package fdc

// Special register addresses (§4.6): this core's own numbering for the
// roughly eleven named registers the Write/Read Special Register
// commands expose. Not pin-compatible; see registers.go's layout note.
const (
	regScanSector           byte = 0x06
	regScanCountLow         byte = 0x13
	regScanCountHigh        byte = 0x14
	regSurface0CurrentTrack byte = 0x12
	regSurface1CurrentTrack byte = 0x1A
	regMode                 byte = 0x17
	regDriveControlInput    byte = 0x22
	regDriveControlOutput   byte = 0x23
	regSurface0BadTrack0    byte = 0x10
	regSurface0BadTrack1    byte = 0x11
	regSurface1BadTrack0    byte = 0x18
	regSurface1BadTrack1    byte = 0x19
)

// setupWriteSpecialRegister implements §4.6's Write Special Register.
// Writing the surface-0 current-track register additionally updates
// pos.LogicalTrack and sets pos.UsingSpecial whenever the written value
// differs from pos.PhysicalTrack (clearing it otherwise), per §4.6.
func setupWriteSpecialRegister(c *Controller) {
	reg := c.regs.Params[0]
	val := c.regs.Params[1]

	switch reg {
	case regScanSector:
		c.regs.ScanSector = val
	case regScanCountLow:
		c.regs.ScanCount = (c.regs.ScanCount &^ 0x00FF) | uint16(val)
	case regScanCountHigh:
		c.regs.ScanCount = (c.regs.ScanCount &^ 0xFF00) | uint16(val)<<8
	case regMode:
		c.regs.Mode = val
	case regSurface0CurrentTrack:
		c.regs.CurrentTrack[0] = val
		c.pos.LogicalTrack = val
		c.pos.UsingSpecial = val != c.pos.PhysicalTrack
	case regSurface1CurrentTrack:
		c.regs.CurrentTrack[1] = val
	case regDriveControlOutput:
		c.regs.DriveControlOutput = val
	case regDriveControlInput:
		c.regs.DriveControlInput = val
	case regSurface0BadTrack0:
		c.regs.BadTrack[0][0] = val
	case regSurface0BadTrack1:
		c.regs.BadTrack[0][1] = val
	case regSurface1BadTrack0:
		c.regs.BadTrack[1][0] = val
	case regSurface1BadTrack1:
		c.regs.BadTrack[1][1] = val
	}

	c.regs.Result = byte(ResultSuccess)
	c.regs.Status = StatusResultFull
	c.updateNMI()
}

// setupReadSpecialRegister implements §4.6's Read Special Register.
func setupReadSpecialRegister(c *Controller) {
	reg := c.regs.Params[0]
	var val byte

	switch reg {
	case regScanSector:
		val = c.regs.ScanSector
	case regScanCountLow:
		val = byte(c.regs.ScanCount)
	case regScanCountHigh:
		val = byte(c.regs.ScanCount >> 8)
	case regMode:
		val = c.regs.Mode
	case regSurface0CurrentTrack:
		val = c.regs.CurrentTrack[0]
	case regSurface1CurrentTrack:
		val = c.regs.CurrentTrack[1]
	case regDriveControlOutput:
		val = c.regs.DriveControlOutput
	case regDriveControlInput:
		val = c.regs.DriveControlInput
	case regSurface0BadTrack0:
		val = c.regs.BadTrack[0][0]
	case regSurface0BadTrack1:
		val = c.regs.BadTrack[0][1]
	case regSurface1BadTrack0:
		val = c.regs.BadTrack[1][0]
	case regSurface1BadTrack1:
		val = c.regs.BadTrack[1][1]
	}

	c.regs.Result = val
	c.regs.Status = StatusResultFull
	c.updateNMI()
}
