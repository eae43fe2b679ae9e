package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Build the chip library and report what loaded",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, statuses, _, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		failed := 0
		for _, st := range statuses {
			if st.Err != nil {
				failed++
				color.New(color.FgRed).Printf("FAIL %s: %v\n", st.Name, st.Err)
			}
		}
		for _, name := range lib.Names() {
			spec, _ := lib.Lookup(name)
			kind := "composite"
			if spec.Eval != nil {
				kind = "primitive"
			}
			fmt.Printf("%-20s %-10s %s\n", name, kind, spec.Folder)
		}
		if failed > 0 {
			color.New(color.FgYellow).Printf("%d chip(s) failed to load\n", failed)
		}
		color.New(color.FgGreen).Printf("%d chip(s) in library\n", lib.Len())
		return nil
	},
}
