package discimg

import "testing"

func buildTestDisc() *Disc {
	d := NewDisc()
	d.Kind = KindSSD
	d.HeadCount = 1
	d.Writable = true
	d.Path = "test.ssd"

	t0 := d.TrackAt(0, 0)
	t0.Readable = true
	t0.LogicalSectors = SectorsPerTrack
	t0.Sectors = make([]Sector, SectorsPerTrack)
	for i := range t0.Sectors {
		t0.Sectors[i] = Sector{
			ID:            IDField{LogicalTrack: 0, Head: 0, LogicalSector: byte(i), SizeCode: 1},
			PhysicalTrack: 0,
			RecordNumber:  i,
			RealSize:      SSDBytesPerSector,
			Data:          make([]byte, SSDBytesPerSector),
		}
	}
	return d
}

func TestSummarizeConsistentTrack(t *testing.T) {
	d := buildTestDisc()
	sum := Summarize(d)
	if sum.SectorCount != SectorsPerTrack {
		t.Fatalf("SectorCount = %d, want %d", sum.SectorCount, SectorsPerTrack)
	}
	if sum.Inconsistent {
		t.Fatalf("expected consistent catalogue")
	}
	if sum.HasErrors {
		t.Fatalf("expected no errors")
	}
	if sum.UsedBytes != SectorsPerTrack*SSDBytesPerSector {
		t.Fatalf("UsedBytes = %d, want %d", sum.UsedBytes, SectorsPerTrack*SSDBytesPerSector)
	}
}

func TestValidateForWriteWarnsButAllows(t *testing.T) {
	d := buildTestDisc()
	t0 := d.TrackAt(0, 0)
	t0.LogicalSectors = SectorsPerTrack - 1 // declared count now disagrees with stored count

	if err := ValidateForWrite(d); err == nil {
		t.Fatalf("expected ValidateForWrite to report the inconsistency")
	}

	// §4.7: "warns but still allows" -- toggling writability must not be
	// blocked by the validator's result.
	d.Writable = true
	if !d.Writable {
		t.Fatalf("writability toggle should succeed despite inconsistency")
	}
}

func TestSummarizeEmptyDisc(t *testing.T) {
	d := NewDisc()
	sum := Summarize(d)
	if sum.SectorCount != 0 || sum.HasErrors || sum.Inconsistent {
		t.Fatalf("Summarize(empty) = %+v, want zero value", sum)
	}
}
