package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/varkala/fbslide"
	"github.com/varkala/fbslide/internal/cli/cmd"
	"github.com/varkala/fbslide/internal/cli/cmd/utils"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fbslide [flags] image...",
	Short: "Display images on the Linux framebuffer",
	Long: `Fbslide draws images straight onto the Linux framebuffer, no desktop
environment or windowing system needed. Point it at one or more images (or a
directory of them) and it will display them in place, scaled and positioned
however you like, optionally as a timed, looping slideshow.`,
	Args: cobra.ArbitraryArgs,
	Run: func(c *cobra.Command, args []string) {
		if v, err := c.Flags().GetBool("show-config"); err == nil && v {
			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			log.Infof("All settings:")
			utils.PrintJSONColored(viper.AllSettings())
			return
		}

		if v, err := c.Flags().GetBool("installconfig"); err == nil && v {
			utils.InstallDefaultConfig()
			return
		}

		if v, err := c.Flags().GetBool("version"); err == nil && v {
			babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
			green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
			log.Infof("%v version %v",
				babyBlue.Render("fbslide"),
				green.Render(strings.Trim(fbslide.Version, "\n\r ")))
			return
		}

		if len(args) == 0 {
			c.Help()
			return
		}

		cmd.RunViewer(args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.AddCommand(cmd.NewNextCmd())
	rootCmd.AddCommand(cmd.NewStopCmd())
	rootCmd.AddCommand(cmd.NewStatusCmd())
	rootCmd.AddCommand(cmd.NewGenManCmd(rootCmd))

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RegisterFlags(rootCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fbslide")
		viper.SetConfigType("toml")
		viper.AddConfigPath("$HOME/.config/fbslide")
		viper.AddConfigPath("/etc/xdg/fbslide")
	}

	viper.SetDefault("framebuffer", -1)
	viper.SetDefault("position", "top-left")
	viper.SetDefault("background", "black")
	viper.SetDefault("scale", "disabled")
	viper.SetDefault("delay", 0)
	viper.SetDefault("loop", false)
	viper.SetDefault("repaint", false)
	viper.SetDefault("hide_cursor", false)
	viper.SetDefault("window", 8)
	viper.SetDefault("debug", false)

	viper.SetEnvPrefix("fbslide")
	viper.AutomaticEnv() // read environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatalf("Error reading config file: %v", err)
		}
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}
