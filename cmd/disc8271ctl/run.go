package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beebem-go/disc8271/discimg"
	"github.com/beebem-go/disc8271/fdc"
)

func newRunCmd() *cobra.Command {
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load an image into drive 0 and replay a register-write script against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args[0], scriptPath)
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "path to a register-write script")
	cmd.MarkFlagRequired("script")
	return cmd
}

func runRun(imagePath, scriptPath string) error {
	d, err := discimg.Load(imagePath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", imagePath, err)
	}
	steps, err := parseScript(scriptPath)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	c := fdc.New(nil)
	c.Reset()
	c.LoadDisc(0, d)

	result, delivered := playScript(c, steps)

	fmt.Printf("result: %#02x\n", result)
	fmt.Printf("data (%d bytes):", len(delivered))
	for i, b := range delivered {
		if i%16 == 0 {
			fmt.Printf("\n  ")
		}
		fmt.Printf("%02x ", b)
	}
	fmt.Println()
	return nil
}
