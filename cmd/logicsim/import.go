package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"logicsim"
)

var importCmd = &cobra.Command{
	Use:   "import BUNDLE",
	Short: "Merge an exported chip bundle into the library",
	Long: `Import reads a multi-chip export bundle and writes its chips into the chip
directory. Chips whose names collide with existing ones are renamed with a
numeric suffix, and every reference to a renamed chip inside the bundle is
rewritten to match.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, _, fs, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		blob, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		res, err := logicsim.ImportBundle(fs, lib.Names(), string(blob))
		if err != nil {
			return err
		}
		for old, nn := range res.Renames {
			color.New(color.FgYellow).Printf("renamed %s -> %s\n", old, nn)
		}
		for _, p := range res.Paths {
			fmt.Println("wrote", p)
		}
		color.New(color.FgGreen).Printf("imported %d chip(s)\n", len(res.Paths))
		return nil
	},
}
