// Command shapesdemo renders a scene file to PNG, JPEG, BMP, TIFF or SVG.
//
// Usage:
//
//	shapesdemo [-scene file.toml] [-output demo.png] [-watch]
//
// Without -scene a built-in scene is rendered. The output format follows
// the extension of -output. With -watch the scene is rendered again every
// time the file changes.
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/canvas"
	"github.com/gogpu/shapes/recording"
	"github.com/gogpu/shapes/recording/backends/raster"
	"github.com/gogpu/shapes/recording/backends/svg"
	"github.com/gogpu/shapes/scene"
)

//go:embed demo.toml
var demoScene []byte

type config struct {
	scene   string
	output  string
	width   int
	height  int
	quality float64
}

func main() {
	var (
		cfg     config
		watch   = flag.Bool("watch", false, "re-render when the scene file changes")
		verbose = flag.Bool("v", false, "log every shape and paint")
	)
	flag.StringVar(&cfg.scene, "scene", "", "scene file (TOML); built-in demo if empty")
	flag.StringVar(&cfg.output, "output", "demo.png", "output file")
	flag.IntVar(&cfg.width, "width", 0, "override the scene width")
	flag.IntVar(&cfg.height, "height", 0, "override the scene height")
	flag.Float64Var(&cfg.quality, "quality", 0, "JPEG quality in 0..1, 0 for the default")
	flag.Parse()

	if *verbose {
		shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := render(cfg); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if !*watch {
		return
	}
	if cfg.scene == "" {
		log.Fatal("-watch needs -scene")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watchScene(ctx, cfg); err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.ParseBytes(demoScene)
	}
	return scene.Load(path)
}

// render records the scene once and plays it back into the backend chosen
// by the output extension.
func render(cfg config) error {
	s, err := loadScene(cfg.scene)
	if err != nil {
		return err
	}
	if cfg.width > 0 {
		s.Width = cfg.width
	}
	if cfg.height > 0 {
		s.Height = cfg.height
	}

	fonts := canvas.NewFontStore()
	if err := s.LoadFonts(fonts); err != nil {
		return err
	}

	w, h := s.Size()
	rec := recording.NewRecorder(w, h)
	if err := s.Render(rec); err != nil {
		return err
	}

	backend, err := newBackend(recording.ForPath(cfg.output), fonts, cfg.quality)
	if err != nil {
		return err
	}
	if err := rec.FinishRecording().Playback(backend); err != nil {
		return err
	}
	out, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend for %s cannot write files", cfg.output)
	}
	if err := out.SaveToFile(cfg.output); err != nil {
		return err
	}

	log.Printf("Scene saved to %s (%dx%d, %d shapes)\n", cfg.output, w, h, len(s.Shapes))
	return nil
}

func newBackend(name string, fonts *canvas.FontStore, quality float64) (recording.Backend, error) {
	switch name {
	case "svg":
		return svg.NewBackend(svg.WithFonts(fonts)), nil
	case "raster":
		return raster.NewBackend(raster.WithFonts(fonts), raster.WithQuality(quality)), nil
	}
	return recording.NewBackend(name)
}

// watchScene watches the scene's directory, since editors often replace a
// file instead of writing it in place.
func watchScene(ctx context.Context, cfg config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()

	target, err := filepath.Abs(cfg.scene)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	log.Printf("Watching %s\n", cfg.scene)

	// bursts of events from one save collapse into one render
	const settle = 100 * time.Millisecond
	timer := time.NewTimer(settle)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(settle)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				timer.Reset(settle)
				continue
			}
			return err
		case <-timer.C:
			if err := render(cfg); err != nil {
				log.Printf("Failed to render: %v", err)
			}
		}
	}
}
