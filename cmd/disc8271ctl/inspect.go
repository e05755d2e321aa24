package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beebem-go/disc8271/discimg"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <image>",
		Short: "Print format, geometry, and catalogue summary for a disc image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(path string) error {
	d, err := discimg.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	fmt.Printf("format:    %s\n", d.Kind)
	fmt.Printf("heads:     %d\n", headsPresent(d))
	fmt.Printf("writable:  %v\n", d.Writable)

	sum := discimg.Summarize(d)
	fmt.Printf("track 0:   %d sectors, %d bytes used, errors=%v, inconsistent=%v\n",
		sum.SectorCount, sum.UsedBytes, sum.HasErrors, sum.Inconsistent)

	for head := 0; head < 2; head++ {
		for track := 0; track < discimg.MaxTracks; track++ {
			t := d.TrackAt(head, track)
			if t == nil || t.NSectors() == 0 {
				continue
			}
			for i := range t.Sectors {
				s := &t.Sectors[i]
				if s.Error != discimg.ErrNone {
					fmt.Printf("  head=%d track=%d sector=%d error=%#02x\n",
						head, track, s.ID.LogicalSector, s.Error)
				}
			}
		}
	}
	return nil
}

func headsPresent(d *discimg.Disc) int {
	count := 0
	for head := 0; head < 2; head++ {
		for track := 0; track < discimg.MaxTracks; track++ {
			if t := d.TrackAt(head, track); t != nil && t.NSectors() > 0 {
				count++
				break
			}
		}
	}
	return count
}
