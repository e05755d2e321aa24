// Package discimg models a mounted floppy disc as the 8271 controller
// sees it: a fixed matrix of tracks, each an ordered sequence of sectors
// carrying an ID field, a declared and real size, and an error code.
//
// This mirrors the teacher's jv1/jv3 model in disk.go, generalized from
// two fixed formats to three (SSD, DSD, FSD) and from a byte-offset
// lookup table to an owned sequence of Sector values per Track.
package discimg

// DiscKind tags which on-disk format a Disc was loaded from, or will be
// saved as.
type DiscKind int

const (
	KindNone DiscKind = iota
	KindSSD
	KindDSD
	KindFSD
)

func (k DiscKind) String() string {
	switch k {
	case KindSSD:
		return "SSD"
	case KindDSD:
		return "DSD"
	case KindFSD:
		return "FSD"
	default:
		return "none"
	}
}

// Sector-level error codes. These are the same byte values the FDC's
// result register reports to the host (see fdc.ResultCode); they are
// duplicated here, in the image model, because a sector's stored error
// is read-path data, not controller state.
const (
	ErrNone              = 0x00
	ErrDataCRC           = 0x0E
	ErrDeletedData       = 0x20
	ErrDeletedDataCRC    = 0x2E
	ErrFSDTrap128        = 0xE0
	ErrFSDTrap256        = 0xE1
)

// MaxTracks bounds the physical track dimension of a Disc's matrix.
const MaxTracks = 80

// SectorsPerTrack is fixed for SSD/DSD images.
const SectorsPerTrack = 10

// SSDBytesPerSector is fixed for SSD/DSD images.
const SSDBytesPerSector = 256

// BytesPerSSDTrack is the size of one track's worth of sectors in an
// SSD/DSD image: 10 sectors of 256 bytes each.
const BytesPerSSDTrack = SectorsPerTrack * SSDBytesPerSector

// sizeCodeBytes decodes a 0..4 ID-field size code into a byte count.
var sizeCodeBytes = [5]int{128, 256, 512, 1024, 2048}

// SizeCodeToBytes converts an ID-field declared size code (0..4) into a
// byte count. Codes outside that range decode to 0.
func SizeCodeToBytes(code byte) int {
	if int(code) >= len(sizeCodeBytes) {
		return 0
	}
	return sizeCodeBytes[code]
}

// IDField is the four-byte header recorded before each sector: logical
// track, head number, logical sector, and an encoded size code.
type IDField struct {
	LogicalTrack  byte
	Head          byte
	LogicalSector byte
	SizeCode      byte
}

// DeclaredSize returns the size in bytes implied by the ID field's size
// code.
func (id IDField) DeclaredSize() int {
	return SizeCodeToBytes(id.SizeCode)
}

// Sector owns its ID field, its position within the track, its declared
// and real stored sizes, its error code, and its own data buffer. A
// Sector's lifetime is tied to its owning Track: it is destroyed only
// when the track is freed or replaced by a reload.
type Sector struct {
	ID            IDField
	PhysicalTrack byte
	RecordNumber  int
	RealSize      int
	Error         byte
	Data          []byte
}

// DeclaredSize returns the sector's ID-field declared size in bytes,
// which may differ from RealSize for copy-protected sectors.
func (s *Sector) DeclaredSize() int {
	return s.ID.DeclaredSize()
}

// Track holds an ordered sequence of Sectors plus the bookkeeping needed
// to decide whether a write-data command may run against it.
type Track struct {
	// Readable is false for FSD tracks recorded with ID fields only and
	// no data; such a track fails read/write setup with sector-not-found.
	Readable bool

	// LogicalSectors is the declared sector count from the last Format
	// command; it need not equal len(Sectors) (NSectors below).
	LogicalSectors int

	// GapSizes are informational only; execution never consults them.
	GapSizes [3]int

	Sectors []Sector
}

// NSectors is the actual stored sector count, which for FSD images may
// exceed or differ from LogicalSectors.
func (t *Track) NSectors() int {
	return len(t.Sectors)
}

// Disc is the per-drive image: its backing file path, its format, its
// writability, its head-count code, and the head×track matrix of Tracks.
//
// HeadCount follows the source's overloaded encoding: 1 means a
// single-sided SSD, 2 means a double-sided DSD, and 0 means a
// double-length single-sided SSD whose second half carries surface 1
// sequentially after surface 0 — see discimg/ssd.go.
type Disc struct {
	Path        string
	Kind        DiscKind
	Writable    bool
	HeadCount   int
	TotalTracks int // FSD only; 0 for SSD/DSD, which are always MaxTracks deep.

	Tracks [2][MaxTracks]Track
}

// NewDisc returns an empty, unwritable, KindNone disc with every track
// initialized to Readable: false and no sectors. The controller's first
// reset does not install one: it leaves each drive with no disc at all
// (see fdc's Reset).
func NewDisc() *Disc {
	return &Disc{}
}

// TrackAt returns a pointer to the track for the given head (0 or 1)
// and physical track number, or nil if either is out of range.
func (d *Disc) TrackAt(head int, physicalTrack int) *Track {
	if head < 0 || head > 1 || physicalTrack < 0 || physicalTrack >= MaxTracks {
		return nil
	}
	return &d.Tracks[head][physicalTrack]
}

// Eject clears the disc back to its empty, unwritable, KindNone state.
// Matches the teacher's disk.load()/recognizeDisk() lifecycle, where
// clearing disk.data is what "no disc" looks like.
func (d *Disc) Eject() {
	*d = Disc{}
}
