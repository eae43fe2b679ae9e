package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"logicsim"
)

var truthCmd = &cobra.Command{
	Use:   "truth CHIP",
	Short: "Print a chip's single-bit truth table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, _, _, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		c, err := lib.Instantiate(args[0])
		if err != nil {
			return err
		}

		head := color.New(color.Bold)
		var cols []string
		for _, p := range c.Inputs() {
			cols = append(cols, p.Name())
		}
		for _, p := range c.Outputs() {
			cols = append(cols, p.Name())
		}
		head.Println(strings.Join(cols, " "))

		n := len(c.Inputs())
		vals := make([]logicsim.Signal, n)
		for mask := 0; mask < 1<<uint(n); mask++ {
			for i := range vals {
				vals[i] = logicsim.Signal(mask>>uint(i)) & 1
			}
			if err := c.SetInputs(vals...); err != nil {
				return err
			}
			var row []string
			for _, v := range vals {
				row = append(row, fmt.Sprintf("%d", v))
			}
			for i := range c.Outputs() {
				row = append(row, fmt.Sprintf("%d", c.Output(i)&1))
			}
			fmt.Println(strings.Join(row, " "))
		}
		return nil
	},
}
