package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func RegisterFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fbslide/fbslide.toml)")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.PersistentFlags().BoolP("installconfig", "i", false, "Install a default config file")
	rootCmd.PersistentFlags().Bool("show-config", false, "Dump resolved config")
	rootCmd.PersistentFlags().Bool("daemonize", false, "Run the slideshow as a daemon")
	viper.BindPFlag("daemonize", rootCmd.PersistentFlags().Lookup("daemonize"))
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	rootCmd.PersistentFlags().BoolP("version", "v", false, "Print version")
	rootCmd.PersistentFlags().BoolP("help", "h", false, "Print usage")

	rootCmd.Flags().StringP("position", "p", "", "Where to place the image: centered, top-left, top-right, bottom-right, bottom-left")
	rootCmd.Flags().StringP("background", "b", "", "Background fill: a named color, #rrggbb, or transparent")
	rootCmd.Flags().StringP("scale", "s", "", "Scale mode: disabled, fit, stretch, fill")
	rootCmd.Flags().Int("delay", 0, "Milliseconds to keep each image on screen")
	rootCmd.Flags().BoolP("loop", "l", false, "Cycle back to the first image after the last")
	rootCmd.Flags().BoolP("repaint", "r", false, "Keep rewriting the frame while an image is displayed")
	rootCmd.Flags().IntP("framebuffer", "f", -1, "Framebuffer device index (-1 picks the lowest found)")
	rootCmd.Flags().BoolP("hide-cursor", "c", false, "Hide the terminal cursor while displaying")
	rootCmd.Flags().Int("window", 0, "How many decoded images to keep in memory at a time")

	viper.BindPFlag("position", rootCmd.Flags().Lookup("position"))
	viper.BindPFlag("background", rootCmd.Flags().Lookup("background"))
	viper.BindPFlag("scale", rootCmd.Flags().Lookup("scale"))
	viper.BindPFlag("delay", rootCmd.Flags().Lookup("delay"))
	viper.BindPFlag("loop", rootCmd.Flags().Lookup("loop"))
	viper.BindPFlag("repaint", rootCmd.Flags().Lookup("repaint"))
	viper.BindPFlag("framebuffer", rootCmd.Flags().Lookup("framebuffer"))
	viper.BindPFlag("hide_cursor", rootCmd.Flags().Lookup("hide-cursor"))
	viper.BindPFlag("window", rootCmd.Flags().Lookup("window"))
}
