// dinotool inspects and runs levels without a window.
//
// Usage:
//
//	dinotool check [paths...]      - Load levels and print their contents
//	dinotool preview <path|name>   - Print a coloured map of a level
//	dinotool run <path|name>       - Run the simulation with scripted input
//
// Global flags:
//
//	--tuning <file>  - YAML overlay for the simulation tuning
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/dino/assets/levels"
	"github.com/automoto/dino/shared/leveldata"
	"github.com/automoto/dino/shared/rules"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTuning string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dinotool",
	Short: "Inspect and run dino levels headlessly",
	Long: `dinotool loads levels the same way the game does and runs the
simulation without opening a window.

Examples:
  dinotool check
  dinotool check mylevels/*.txt
  dinotool preview level3
  dinotool run level1 --frames 600 --input "R120 RJ20 R200"`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagTuning == "" {
			return nil
		}
		f, err := os.Open(flagTuning)
		if err != nil {
			return err
		}
		defer f.Close()
		return rules.Apply(f)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "YAML file overriding simulation tuning")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(runCmd)
}

// loadLevel reads a level file from disk, or a bundled level by name when
// no such file exists.
func loadLevel(arg string) (*leveldata.Level, error) {
	if _, err := os.Stat(arg); err == nil {
		return leveldata.Load(os.DirFS(filepath.Dir(arg)), filepath.Base(arg))
	}
	name := strings.TrimSuffix(strings.TrimSuffix(arg, ".txt"), ".tmx")
	paths, err := leveldata.Discover(levels.FS, levels.Dir)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if leveldata.Stem(p) == name {
			return leveldata.Load(levels.FS, p)
		}
	}
	return nil, fmt.Errorf("no level file or bundled level named %q", arg)
}
