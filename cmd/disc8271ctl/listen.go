package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beebem-go/disc8271/discimg"
	"github.com/beebem-go/disc8271/fdc"
	"github.com/beebem-go/disc8271/soundsink"
)

func newListenCmd() *cobra.Command {
	var scriptPath, wavPath string

	cmd := &cobra.Command{
		Use:   "listen <image>",
		Short: "Replay a register-write script and record the drive's sound cues to a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListen(args[0], scriptPath, wavPath)
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "path to a register-write script")
	cmd.Flags().StringVar(&wavPath, "wav", "", "path to write the recorded cues to")
	cmd.MarkFlagRequired("script")
	cmd.MarkFlagRequired("wav")
	return cmd
}

func runListen(imagePath, scriptPath, wavPath string) error {
	d, err := discimg.Load(imagePath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", imagePath, err)
	}
	steps, err := parseScript(scriptPath)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	sink, err := soundsink.NewWavSink(wavPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", wavPath, err)
	}

	c := fdc.New(sink)
	c.Reset()
	c.LoadDisc(0, d)

	result, delivered := playScript(c, steps)

	if err := sink.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", wavPath, err)
	}

	fmt.Printf("result: %#02x, %d bytes delivered, %d samples recorded to %s\n",
		result, len(delivered), sink.SampleCount(), wavPath)
	return nil
}
