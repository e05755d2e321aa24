// Command disc8271ctl is a terminal tool for inspecting disc images and
// exercising the 8271 controller core against them: print a catalogue
// summary, replay a register-write script and observe the resulting
// transfer, or do the same while recording the drive's sound cues to a
// WAV file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/beebem-go/disc8271/internal/debuglog"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "disc8271ctl",
		Short: "Inspect and exercise 8271 floppy disc images",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable instruction-level tracing")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		debuglog.Verbose = verbose
	}

	root.AddCommand(newInspectCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newListenCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
