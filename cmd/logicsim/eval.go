package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"logicsim"
)

var evalCmd = &cobra.Command{
	Use:   "eval CHIP [VALUE...]",
	Short: "Evaluate a chip with the given input values",
	Long: `Evaluate instantiates the named chip, drives its input pins with the given
values (decimal, or hex with an 0x prefix) and prints the resulting outputs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, _, _, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		c, err := lib.Instantiate(args[0])
		if err != nil {
			return err
		}
		vals, err := parseSignals(args[1:])
		if err != nil {
			return err
		}
		if len(vals) != len(c.Inputs()) {
			return errors.Errorf("chip %q takes %d inputs, got %d", c.Name(), len(c.Inputs()), len(vals))
		}
		if err := c.SetInputs(vals...); err != nil {
			return err
		}
		for i, p := range c.Outputs() {
			fmt.Printf("%s = %d\n", p.Name(), c.Output(i))
		}
		return nil
	},
}

func parseSignals(args []string) ([]logicsim.Signal, error) {
	vals := make([]logicsim.Signal, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseUint(a, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad input value %q", a)
		}
		w, err := safecast.Conv[uint32](v)
		if err != nil {
			return nil, errors.Errorf("input value %q does not fit in 32 bits", a)
		}
		vals = append(vals, logicsim.Signal(w))
	}
	return vals, nil
}
