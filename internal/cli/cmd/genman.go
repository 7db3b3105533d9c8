package cmd

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewGenManCmd returns a command that writes man pages for the whole CLI
// tree into a directory, for packaging.
func NewGenManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "genman <dir>",
		Short: "Write fbslide man pages into a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := filepath.Clean(args[0])
			header := &doc.GenManHeader{
				Title:   "FBSLIDE",
				Section: "1",
				Source:  "fbslide",
				Manual:  "fbslide manual",
			}
			if err := doc.GenManTree(rootCmd, header, dir); err != nil {
				return err
			}
			log.Infof("Wrote man pages to %s", dir)
			return nil
		},
	}
}
