package discimg

import "fmt"

// CatalogueSummary is a read-only structural view over a disc's track 0
// contents, used by the writability-toggle validator (§4.7). It does not
// interpret any host filesystem's catalogue format; it only checks the
// invariants the writeback path itself relies on.
//
// Grounded on ha1tch-plus3/pkg/diskimg/diskcheck.go's DiskCheck shape,
// narrowed to the structural checks this controller's writeback actually
// needs.
type CatalogueSummary struct {
	SectorCount  int
	UsedBytes    int
	HasErrors    bool
	Inconsistent bool
}

// Summarize inspects track 0, head 0 of a disc and reports its sector
// count, total stored bytes, and whether any sector carries a non-zero
// error code or the track's declared sector count disagrees with the
// number of sectors actually stored.
func Summarize(d *Disc) CatalogueSummary {
	var sum CatalogueSummary

	t := d.TrackAt(0, 0)
	if t == nil {
		return sum
	}

	sum.SectorCount = t.NSectors()
	sum.Inconsistent = t.LogicalSectors != t.NSectors()

	for i := range t.Sectors {
		sec := &t.Sectors[i]
		sum.UsedBytes += sec.RealSize
		if sec.Error != ErrNone {
			sum.HasErrors = true
		}
	}

	return sum
}

// ValidateForWrite runs the catalogue validator described in §4.7:
// writability toggling should run this first, and warn (but still
// allow the write) when the catalogue looks inconsistent.
//
// The returned error is non-nil only to describe *why* the catalogue is
// inconsistent for logging purposes; callers must not treat a non-nil
// error as grounds for refusing the write.
func ValidateForWrite(d *Disc) error {
	sum := Summarize(d)
	if sum.Inconsistent {
		return fmt.Errorf("discimg: track 0 stores %d sectors but declares a different logical sector count", sum.SectorCount)
	}
	return nil
}
