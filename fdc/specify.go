package fdc

// Specify subcommand selectors (§4.6): the first parameter byte picks
// which group of registers the remaining three bytes load.
const (
	specifyTiming   byte = 0x0D
	specifySurface0 byte = 0x10
	specifySurface1 byte = 0x18
)

// setupSpecify implements §4.6's Specify command: a single opcode
// (mask 0xFF, so it never aliases with the masked 0x3F command space)
// multiplexed by Params[0].
func setupSpecify(c *Controller) {
	switch c.regs.Params[0] {
	case specifyTiming:
		c.regs.StepRate = c.regs.Params[1]
		c.regs.HeadSettle = c.regs.Params[2]
		c.regs.IndexCount = c.regs.Params[3] >> 4
		c.regs.HeadLoadTime = c.regs.Params[3] & 0x0F
	case specifySurface0:
		c.regs.BadTrack[0][0] = c.regs.Params[1]
		c.regs.BadTrack[0][1] = c.regs.Params[2]
		c.regs.CurrentTrack[0] = c.regs.Params[3]
	case specifySurface1:
		c.regs.BadTrack[1][0] = c.regs.Params[1]
		c.regs.BadTrack[1][1] = c.regs.Params[2]
		c.regs.CurrentTrack[1] = c.regs.Params[3]
	}

	c.regs.Result = byte(ResultSuccess)
	c.regs.Status = StatusResultFull
	c.updateNMI()
}
