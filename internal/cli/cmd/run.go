package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sevlyar/go-daemon"
	"github.com/spf13/viper"

	"github.com/varkala/fbslide/internal/cli/cmd/utils"
	"github.com/varkala/fbslide/internal/decode"
	"github.com/varkala/fbslide/internal/fb"
	"github.com/varkala/fbslide/internal/ipc"
	"github.com/varkala/fbslide/internal/playback"
	"github.com/varkala/fbslide/internal/stream"
	"github.com/varkala/fbslide/internal/term"
	"github.com/varkala/fbslide/internal/types"
)

// controller adapts the playback loop and the run's cancel function to
// what the control socket needs.
type controller struct {
	loop *playback.Loop
	stop context.CancelFunc
}

func (c *controller) CurrentSource() string { return c.loop.CurrentSource() }
func (c *controller) RequestNext()          { c.loop.Skip() }
func (c *controller) RequestStop()          { c.stop() }

// RunViewer displays the given images on the framebuffer and blocks until
// the run completes or is interrupted.
func RunViewer(args []string) {
	if viper.GetBool("daemonize") {
		release := daemonize()
		if release == nil {
			return // parent
		}
		defer release()
	}

	sources := collectSources(args)
	log.Infof("Displaying %d images", len(sources))

	pos, err := types.ParsePlacement(viper.GetString("position"))
	if err != nil {
		log.Fatalf("Invalid position: %v", err)
	}
	bg, err := types.ParseBackground(viper.GetString("background"))
	if err != nil {
		log.Fatalf("Invalid background: %v", err)
	}
	scale, err := types.ParseScale(viper.GetString("scale"))
	if err != nil {
		log.Fatalf("Invalid scale mode: %v", err)
	}

	idx := viper.GetInt("framebuffer")
	if idx < 0 {
		if idx, err = fb.DefaultIndex(); err != nil {
			log.Fatalf("%v", err)
		}
	}
	dev, err := fb.Open(idx)
	if err != nil {
		log.Fatalf("Failed to open framebuffer: %v", err)
	}
	defer dev.Close()

	res := dev.Resolution()
	log.Infof("Framebuffer %d: %dx%d", idx, res.X, res.Y)

	delay := time.Duration(viper.GetInt("delay")) * time.Millisecond
	repaint := viper.GetBool("repaint")
	hideCursor := viper.GetBool("hide_cursor")

	images := stream.New(sources, viper.GetInt("window"), viper.GetBool("loop"), decode.Load)
	show := playback.New(dev, images, playback.Options{
		Placement:  pos,
		Background: bg,
		Scale:      scale,
		Delay:      delay,
		Repaint:    repaint,
		HoldOnDone: hideCursor && !repaint && delay == 0,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slideshow := images.Looping() || delay > 0
	if slideshow {
		go ipc.Start(&controller{loop: show, stop: stop})
		defer os.Remove(ipc.SocketPath())
	}

	if hideCursor {
		term.HideCursor()
		defer term.ShowCursor()
	}

	if err := show.Run(ctx); err != nil {
		if hideCursor {
			term.ShowCursor()
		}
		log.Fatalf("%v", err)
	}
	log.Info("fbslide exited")
}

// collectSources expands the positional arguments into image paths.
// Directories contribute their image files in name order; plain files are
// taken as given.
func collectSources(args []string) []string {
	sources := make([]string, 0, len(args))
	for _, arg := range args {
		path := utils.CanonicalPath(arg)
		info, err := os.Stat(path)
		if err != nil {
			log.Fatalf("Cannot read %s: %v", path, err)
		}
		if !info.IsDir() {
			sources = append(sources, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			log.Fatalf("Error reading image directory: %v", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := strings.ToLower(entry.Name())
			if strings.HasSuffix(name, ".png") ||
				strings.HasSuffix(name, ".jpg") ||
				strings.HasSuffix(name, ".jpeg") ||
				strings.HasSuffix(name, ".gif") ||
				strings.HasSuffix(name, ".bmp") ||
				strings.HasSuffix(name, ".tiff") ||
				strings.HasSuffix(name, ".webp") {
				sources = append(sources, filepath.Join(path, entry.Name()))
			}
		}
	}

	if len(sources) == 0 {
		log.Fatal("No images to display.")
	}
	return sources
}

// daemonize forks the process into the background. The parent gets nil;
// the child gets a release function for its pid file and its logs routed
// to a rotating file.
func daemonize() func() {
	home := os.Getenv("HOME")
	runDir := filepath.Join(home, ".local", "share", "fbslide")
	if err := os.MkdirAll(runDir, 0755); err != nil {
		log.Fatalf("Error creating %s: %v", runDir, err)
	}

	cntxt := &daemon.Context{
		PidFileName: filepath.Join(runDir, "fbslide.pid"),
		PidFilePerm: 0644,
		Umask:       027,
	}

	child, err := cntxt.Reborn()
	if err != nil {
		log.Fatalf("Failed to daemonize: %v", err)
	}
	if child != nil {
		log.Infof("fbslide running in background, PID %d", child.Pid)
		return nil
	}

	setupRotatingLogger(runDir)
	return func() { cntxt.Release() }
}

func setupRotatingLogger(logDir string) {
	logPath := filepath.Join(logDir, "fbslide.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
}
