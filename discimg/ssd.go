package discimg

import (
	"fmt"
	"os"

	"github.com/beebem-go/disc8271/internal/debuglog"
)

// doubleLengthThreshold is the file-size cutoff above which an SSD file
// is treated as a double-length single-sided image carrying surface 1
// sequentially after surface 0, rather than a plain single-sided image.
const doubleLengthThreshold = 0x40000

// LoadSSD loads a single-density sequential image. Files larger than
// doubleLengthThreshold are treated as double-length single-sided
// (head-code 0); otherwise the image is single-sided (head-code 1).
func LoadSSD(path string) (*Disc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	headCount := 1
	if len(data) > doubleLengthThreshold {
		headCount = 0
	}

	d := NewDisc()
	d.Path = path
	d.Kind = KindSSD
	d.HeadCount = headCount
	loadFlatSectors(d, data, headCount)

	debuglog.Printf(debuglog.ImageIO, "LoadSSD(%q) = %d bytes, headCount=%d", path, len(data), headCount)
	return d, nil
}

// LoadDSD loads a double-sided interleaved image: track 0 head 0, track
// 0 head 1, track 1 head 0, and so on, each 2560 bytes.
func LoadDSD(path string) (*Disc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d := NewDisc()
	d.Path = path
	d.Kind = KindDSD
	d.HeadCount = 2
	loadFlatSectors(d, data, 2)

	debuglog.Printf(debuglog.ImageIO, "LoadDSD(%q) = %d bytes", path, len(data))
	return d, nil
}

// loadFlatSectors populates every track reachable within data according
// to the §4.7 offset formula for the given headCount, synthesizing ID
// fields from position (SSD/DSD carry no on-disk ID fields).
func loadFlatSectors(d *Disc, data []byte, headCount int) {
	for track := 0; track < MaxTracks; track++ {
		for head := 0; head < 2; head++ {
			if headCount == 1 && head == 1 {
				continue
			}
			offset := trackOffset(headCount, track, head)
			if offset+BytesPerSSDTrack > len(data) {
				continue
			}
			t := &d.Tracks[head][track]
			t.Readable = true
			t.LogicalSectors = SectorsPerTrack
			t.Sectors = make([]Sector, SectorsPerTrack)
			for s := 0; s < SectorsPerTrack; s++ {
				start := offset + s*SSDBytesPerSector
				buf := make([]byte, SSDBytesPerSector)
				copy(buf, data[start:start+SSDBytesPerSector])
				t.Sectors[s] = Sector{
					ID: IDField{
						LogicalTrack:  byte(track),
						Head:          byte(head),
						LogicalSector: byte(s),
						SizeCode:      1,
					},
					PhysicalTrack: byte(track),
					RecordNumber:  s,
					RealSize:      SSDBytesPerSector,
					Error:         ErrNone,
					Data:          buf,
				}
			}
		}
	}
}

// trackOffset implements the §4.7 byte-offset formula.
func trackOffset(headCount, track, head int) int {
	if headCount == 0 {
		return (track + head*MaxTracks) * BytesPerSSDTrack
	}
	return (headCount*track + head) * BytesPerSSDTrack
}

// SaveTrack serialises the first SectorsPerTrack sectors of the given
// track back to the disc's backing file, per §4.7. It opens the file
// read/write, extends it with zero bytes if the offset falls beyond the
// current end, writes exactly BytesPerSSDTrack bytes, and closes.
//
// Any I/O failure, or an attempt to save a non-SSD/DSD disc, returns a
// non-nil error; callers map this to fdc.ResultWriteProtect.
func SaveTrack(d *Disc, head, track int) error {
	if d.Kind != KindSSD && d.Kind != KindDSD {
		return fmt.Errorf("discimg: cannot save track to a %s image", d.Kind)
	}
	if !d.Writable {
		return ErrNotWritable
	}

	t := d.TrackAt(head, track)
	if t == nil || len(t.Sectors) < SectorsPerTrack {
		return ErrTruncatedImage
	}

	f, err := os.OpenFile(d.Path, os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	offset := int64(trackOffset(d.HeadCount, track, head))

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() < offset+int64(BytesPerSSDTrack) {
		if err := f.Truncate(offset + int64(BytesPerSSDTrack)); err != nil {
			return err
		}
	}

	buf := make([]byte, BytesPerSSDTrack)
	for s := 0; s < SectorsPerTrack; s++ {
		copy(buf[s*SSDBytesPerSector:], t.Sectors[s].Data)
	}

	if _, err := f.WriteAt(buf, offset); err != nil {
		return err
	}

	debuglog.Printf(debuglog.ImageIO, "SaveTrack(head=%d, track=%d) -> offset %d", head, track, offset)
	return nil
}
