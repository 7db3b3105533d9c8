package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/varkala/fbslide/internal/cli/cmd/utils"
	"github.com/varkala/fbslide/internal/ipc"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get the status of a running slideshow",
		Long:  `Returns the current status of the fbslide process.`,
		Run: func(cmd *cobra.Command, args []string) {
			status, err := ipc.SendStatus()
			if err != nil {
				log.Errorf("Error fetching status: %v", err)
				return
			}

			utils.PrintJSONColored(status)
		},
	}
}
