// Command logicsim loads, evaluates and imports chip libraries from the
// command line.
package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"logicsim"
	"logicsim/store"
)

var rootCmd = &cobra.Command{
	Use:   "logicsim",
	Short: "Digital logic chip library tool",
	Long:  "logicsim builds chip libraries from saved definitions, evaluates chips and imports chip bundles.",
}

func main() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(truthCmd)
	rootCmd.AddCommand(importCmd)

	rootCmd.PersistentFlags().String("dir", "", "chip library directory (overrides logicsim.toml)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "bypass the parsed-record cache")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// libraryDir resolves the chip directory: the --dir flag wins, then the
// workspace manifest, then the default.
func libraryDir(cmd *cobra.Command) (string, error) {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		return dir, nil
	}
	path, ok, err := store.FindConfig(".")
	if err != nil {
		return "", err
	}
	cfg := store.DefaultConfig()
	if ok {
		if cfg, err = store.LoadConfig(path); err != nil {
			return "", err
		}
	}
	return cfg.Library.Dir, nil
}

// openLibrary reads every definition in the chip directory and builds the
// library, going through the record cache when the raw texts are unchanged.
func openLibrary(cmd *cobra.Command) (*logicsim.Library, []logicsim.RecordStatus, *store.FS, error) {
	dir, err := libraryDir(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	fs, err := store.NewFS(dir)
	if err != nil {
		return nil, nil, nil, err
	}
	_, texts, err := fs.ReadAllChips(context.Background())
	if err != nil {
		return nil, nil, nil, err
	}

	ld := &logicsim.Loader{Logf: warnf}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	if noCache {
		lib, statuses, err := ld.BuildLibraryFromTexts(texts, logicsim.Primitives())
		return lib, statuses, fs, err
	}

	cache, err := store.OpenCache("logicsim")
	if err != nil {
		// cache trouble never blocks a load
		warnf("record cache unavailable: %v", err)
		cache = nil
	}
	key := store.DigestTexts(texts)
	records, hit, err := cache.Get(key)
	if err != nil {
		warnf("record cache read failed: %v", err)
		hit = false
	}
	if !hit {
		records = records[:0]
		for _, raw := range texts {
			rec, err := ld.ParseRecord(raw)
			if err != nil {
				warnf("skipping unparseable record: %v", err)
				continue
			}
			records = append(records, rec)
		}
		if err := cache.Put(key, records); err != nil {
			warnf("record cache write failed: %v", err)
		}
	}
	lib, statuses, err := ld.BuildLibrary(records, logicsim.Primitives())
	return lib, statuses, fs, err
}

func warnf(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
