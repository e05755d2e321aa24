package fdc

// commandEntry is one row of the command dispatch table (§4.3): an
// opcode/mask pair, the parameter count it expects, its setup handler
// (run once all parameters have arrived), and its per-tick handler (run
// repeatedly by the scheduler until the command completes).
//
// Grounded on the teacher's masked-switch dispatch in disk.go
// (commandType, diskCommandMask), generalized from a fixed switch to a
// searched table because this controller's opcode space is denser and
// its masks vary per command (Specify uses 0xFF, everything else 0x3F).
type commandEntry struct {
	opcode     byte
	mask       byte
	paramCount int
	setup      func(c *Controller)
	tick       func(c *Controller)
	name       string
}

// commandTable is evaluated top-to-bottom; the first entry whose
// (opcode == hostValue & mask) holds wins. The final entry has mask 0
// and therefore matches unconditionally, acting as the catch-all for
// scan/search and other decode-only opcodes (§4.3).
var commandTable = []commandEntry{
	{opcode: 0x0B, mask: 0x3F, paramCount: 3, setup: setupWrite, tick: tickWrite, name: "Write Data"},
	{opcode: 0x13, mask: 0x3F, paramCount: 3, setup: setupRead, tick: tickRead, name: "Read Data"},
	{opcode: 0x16, mask: 0x3F, paramCount: 2, setup: setupRead128, tick: tickRead128, name: "Read Data & Deleted (128)"},
	{opcode: 0x17, mask: 0x3F, paramCount: 3, setup: setupRead, tick: tickRead, name: "Read Data & Deleted (var)"},
	{opcode: 0x1B, mask: 0x3F, paramCount: 3, setup: setupReadID, tick: tickReadID, name: "Read ID"},
	{opcode: 0x1F, mask: 0x3F, paramCount: 3, setup: setupVerify, tick: tickVerify, name: "Verify Data"},
	{opcode: 0x23, mask: 0x3F, paramCount: 5, setup: setupFormat, tick: tickFormat, name: "Format"},
	{opcode: 0x29, mask: 0x3F, paramCount: 1, setup: setupSeek, tick: tickSeek, name: "Seek"},
	{opcode: 0x2C, mask: 0x3F, paramCount: 0, setup: setupReadDriveStatus, tick: nil, name: "Read Drive Status"},
	{opcode: 0x35, mask: 0xFF, paramCount: 4, setup: setupSpecify, tick: nil, name: "Specify"},
	{opcode: 0x3A, mask: 0x3F, paramCount: 2, setup: setupWriteSpecialRegister, tick: nil, name: "Write Special Register"},
	{opcode: 0x3D, mask: 0x3F, paramCount: 1, setup: setupReadSpecialRegister, tick: nil, name: "Read Special Register"},
	{opcode: 0x00, mask: 0x00, paramCount: 0, setup: setupUnimplemented, tick: nil, name: "Unimplemented"},
}

func lookupCommand(raw byte) *commandEntry {
	for i := range commandTable {
		e := &commandTable[i]
		if raw&e.mask == e.opcode&e.mask {
			return e
		}
	}
	// Unreachable: the last entry has mask 0 and always matches.
	return &commandTable[len(commandTable)-1]
}

// setupUnimplemented is the catch-all for scan, 128-byte write,
// write-deleted, 128-byte read, and 128-byte verify: accepted at decode
// but not executed, per §4.3.
func setupUnimplemented(c *Controller) {
	logDispatch(c, "unimplemented command %#02x", c.regs.Command)
}
