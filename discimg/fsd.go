package discimg

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/beebem-go/disc8271/internal/debuglog"
)

// fsdHeaderSize is the fixed, opaque-to-this-core header at the start of
// every FSD file.
const fsdHeaderSize = 8

// fsdMaxLastTrack bounds the "last track number" header byte; total
// tracks (value+1) must not exceed 40.
const fsdMaxLastTrack = 39

// LoadFSD loads the rich, sector-accurate FSD format described in
// SPEC_FULL.md §6. Per-track ID fields are always parsed; per-sector
// data and real size/error code are only present when the track's
// readable byte is 255.
func LoadFSD(path string) (*Disc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	if _, err := io.CopyN(io.Discard, r, fsdHeaderSize); err != nil {
		return nil, fmt.Errorf("discimg: reading FSD header: %w", err)
	}

	if err := skipNulTerminated(r); err != nil {
		return nil, fmt.Errorf("discimg: reading FSD title: %w", err)
	}

	lastTrack, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("discimg: reading FSD last-track byte: %w", err)
	}
	if lastTrack > fsdMaxLastTrack {
		return nil, fmt.Errorf("%w: last track %d exceeds %d", ErrTrackTooLarge, lastTrack, fsdMaxLastTrack)
	}
	totalTracks := int(lastTrack) + 1

	d := NewDisc()
	d.Path = path
	d.Kind = KindFSD
	d.TotalTracks = totalTracks

	for i := 0; i < totalTracks; i++ {
		if err := readFSDTrack(r, d); err != nil {
			return nil, fmt.Errorf("discimg: reading FSD track %d: %w", i, err)
		}
	}

	debuglog.Printf(debuglog.ImageIO, "LoadFSD(%q) totalTracks=%d", path, totalTracks)
	return d, nil
}

func skipNulTerminated(r *bufio.Reader) error {
	_, err := r.ReadString(0)
	return err
}

func readFSDTrack(r *bufio.Reader, d *Disc) error {
	trackID, err := r.ReadByte()
	if err != nil {
		return err
	}

	sectorCount, err := r.ReadByte()
	if err != nil {
		return err
	}

	if sectorCount == 0 {
		// Unformatted track: no readable byte, no sectors.
		if int(trackID) < MaxTracks {
			d.Tracks[0][trackID] = Track{Readable: false}
		}
		return nil
	}

	readableByte, err := r.ReadByte()
	if err != nil {
		return err
	}
	readable := readableByte == 255

	sectors := make([]Sector, sectorCount)
	for i := range sectors {
		idBytes := make([]byte, 4)
		if _, err := io.ReadFull(r, idBytes); err != nil {
			return err
		}
		sectors[i] = Sector{
			ID: IDField{
				LogicalTrack:  idBytes[0],
				Head:          idBytes[1],
				LogicalSector: idBytes[2],
				SizeCode:      idBytes[3],
			},
			PhysicalTrack: trackID,
			RecordNumber:  i,
		}
	}

	if readable {
		for i := range sectors {
			hdr := make([]byte, 2)
			if _, err := io.ReadFull(r, hdr); err != nil {
				return err
			}
			realSize := SizeCodeToBytes(hdr[0])
			data := make([]byte, realSize)
			if _, err := io.ReadFull(r, data); err != nil {
				return err
			}
			sectors[i].RealSize = realSize
			sectors[i].Error = hdr[1]
			sectors[i].Data = data
		}
	}

	head := 0
	if len(sectors) > 0 {
		head = int(sectors[0].ID.Head)
	}
	if head < 0 || head > 1 || int(trackID) >= MaxTracks {
		return fmt.Errorf("discimg: FSD track %d head %d out of range", trackID, head)
	}

	d.Tracks[head][trackID] = Track{
		Readable:       readable,
		LogicalSectors: int(sectorCount),
		Sectors:        sectors,
	}

	return nil
}
