package fdc

// Status register bits. Bit positions are this implementation's own
// choice (the spec treats them as opaque bits with the given meanings,
// not as a pin-compatible byte layout).
const (
	StatusCommandBusy      byte = 0x80
	StatusNonDMAMode       byte = 0x40
	StatusResultFull       byte = 0x10
	StatusInterruptRequest byte = 0x08
)

// Register window offsets (§6: only these four are meaningful).
const (
	OffsetStatus  = 0
	OffsetResult  = 1
	OffsetReset   = 2
	OffsetData    = 4
)

// paramBufSize is "16 bytes, sufficient" per §3.
const paramBufSize = 16

// registers is the FDC register file described in SPEC_FULL.md §3.
type registers struct {
	Result byte
	Status byte
	Data   byte

	Command        byte
	ParamCount     int // expected parameter count for the latched command
	ParamsReceived int
	Params         [paramBufSize]byte

	Select0, Select1 bool

	ScanSector byte
	ScanCount  uint16
	Mode       byte

	// CurrentTrack is the per-surface current-track register, indexed
	// by surface (0 or 1).
	CurrentTrack [2]byte

	DriveControlOutput byte
	DriveControlInput  byte

	// BadTrack holds two bad-track slots per surface.
	BadTrack [2][2]byte

	StepRate     byte
	HeadSettle   byte
	IndexCount   byte
	HeadLoadTime byte
}

// transferState is the in-flight command's working state (§3,
// "Transfer state"). CurrentHead/CurrentPhysicalTrack/HasTrack and
// CurrentSectorIdx/HasSector replace the source's raw owning pointers
// with indices into the Image Model, per §9's ownership design note.
type transferState struct {
	TrackAddr  byte
	SectorID   byte
	SectorLen  int
	SectorsToGo int

	CurrentHead          int
	CurrentPhysicalTrack int
	HasTrack             bool

	CurrentSectorIdx int
	HasSector        bool

	ByteWithinSector int

	FirstWriteInterrupt bool
}

// positioningState is §3's "Positioning state". Per §9's open question,
// this is deliberately shared across drive selection rather than kept
// per-drive, matching the source and the scenarios in §8.
type positioningState struct {
	PhysicalTrack  byte
	LogicalTrack   byte
	PositionInTrack int
	UsingSpecial   bool
	Drdsc          int
	SectorOverRead bool
}
