package fdc

// Read Drive Status bit positions (§4.6): this core's own choice of
// layout, not a pin-compatible encoding (see registers.go's note on
// the status register for the same caveat).
const (
	driveStatusReady          byte = 0x80
	driveStatusDrive1Selected byte = 0x40
	driveStatusWriteProtected byte = 0x08
	driveStatusDrive0Selected byte = 0x04
	driveStatusTrack0         byte = 0x02
)

// setupReadDriveStatus implements §4.6's Read Drive Status: a
// zero-parameter command that answers synchronously from the setup
// handler, matching the dispatch table's tick: nil for this opcode.
func setupReadDriveStatus(c *Controller) {
	var result byte

	if c.regs.Select1 {
		result |= driveStatusDrive1Selected
	}
	if c.regs.Select0 {
		result |= driveStatusDrive0Selected
	}

	result |= driveStatusReady

	disc := c.currentDisc()
	if disc != nil && !disc.Writable {
		result |= driveStatusWriteProtected
	}
	if drive := c.selectedDrive(); drive >= 0 && c.regs.CurrentTrack[drive] == 0 {
		result |= driveStatusTrack0
	}

	c.pos.Drdsc++

	c.regs.Result = result
	c.regs.Status = StatusResultFull
	c.updateNMI()
}
