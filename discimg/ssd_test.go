package discimg

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSSDFixture(t *testing.T, path string) {
	t.Helper()
	data := make([]byte, MaxTracks*BytesPerSSDTrack)
	for track := 0; track < MaxTracks; track++ {
		for i := 0; i < BytesPerSSDTrack; i++ {
			data[track*BytesPerSSDTrack+i] = byte(track)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoadSSDSingleSided(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disc.ssd")
	writeSSDFixture(t, path)

	d, err := LoadSSD(path)
	if err != nil {
		t.Fatalf("LoadSSD: %v", err)
	}
	if d.HeadCount != 1 {
		t.Fatalf("HeadCount = %d, want 1", d.HeadCount)
	}

	track3 := d.TrackAt(0, 3)
	if !track3.Readable || track3.NSectors() != SectorsPerTrack {
		t.Fatalf("track 3 not loaded correctly: %+v", track3)
	}
	if track3.Sectors[0].Data[0] != 3 {
		t.Fatalf("track 3 data[0] = %d, want 3", track3.Sectors[0].Data[0])
	}
}

func TestFormatThenSaveTrackWritesE5(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disc.ssd")
	writeSSDFixture(t, path)

	d, err := LoadSSD(path)
	if err != nil {
		t.Fatalf("LoadSSD: %v", err)
	}
	d.Writable = true

	track := d.TrackAt(0, 3)
	for i := range track.Sectors {
		for j := range track.Sectors[i].Data {
			track.Sectors[i].Data[j] = 0xE5
		}
	}

	if err := SaveTrack(d, 0, 3); err != nil {
		t.Fatalf("SaveTrack: %v", err)
	}

	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	offset := 3 * BytesPerSSDTrack
	for i := 0; i < BytesPerSSDTrack; i++ {
		if saved[offset+i] != 0xE5 {
			t.Fatalf("saved[%d] = %#02x, want 0xE5", offset+i, saved[offset+i])
		}
	}
}

func TestSaveTrackRejectsUnwritable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "disc.ssd")
	writeSSDFixture(t, path)

	d, err := LoadSSD(path)
	if err != nil {
		t.Fatalf("LoadSSD: %v", err)
	}

	if err := SaveTrack(d, 0, 3); err != ErrNotWritable {
		t.Fatalf("SaveTrack on unwritable disc = %v, want ErrNotWritable", err)
	}
}
