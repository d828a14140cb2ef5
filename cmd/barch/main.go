// Command barch converts grayscale images to and from the BARCH format.
//
// Usage:
//
//	barch compress [-v] [-jobs n] <image>...
//	barch uncompress [-v] [-jobs n] <archive>...
//	barch info <archive>...
//	barch watch [-v] [-interval d] <dir>
//
// compress packs each image into a sibling <base>-packed.barch file;
// uncompress unpacks each archive into a sibling <base>-unpacked.bmp.
// watch polls a directory and transcodes files as they appear.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/barch"
	"github.com/hupe1980/barch/imageio"
	"github.com/hupe1980/barch/rowset"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "compress":
		err = runTranscode(ctx, os.Args[2:], imageio.PackFile)
	case "uncompress":
		err = runTranscode(ctx, os.Args[2:], imageio.UnpackFile)
	case "info":
		err = runInfo(os.Args[2:])
	case "watch":
		err = runWatch(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "barch:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  barch compress [-v] [-jobs n] <image>...
  barch uncompress [-v] [-jobs n] <archive>...
  barch info <archive>...
  barch watch [-v] [-interval d] <dir>`)
}

func newLogger(verbose bool) *barch.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return barch.NewTextLogger(level)
}

func runTranscode(ctx context.Context, args []string, convert func(string, barch.ProgressFunc) (string, error)) error {
	fs := flag.NewFlagSet("transcode", flag.ExitOnError)
	verbose := fs.Bool("v", false, "verbose logging")
	jobs := fs.Int("jobs", 4, "number of files converted in parallel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no input files")
	}

	logger := newLogger(*verbose)

	// Each worker converts through disjoint bitmap instances, so files can
	// proceed in parallel without sharing codec state.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*jobs)
	for _, path := range fs.Args() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			out, err := convert(path, nil)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			logger.Info("converted",
				"input", path,
				"output", out,
				"duration", time.Since(start),
			)
			return nil
		})
	}
	return g.Wait()
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("no input files")
	}

	for _, path := range fs.Args() {
		compressed, err := barch.LoadFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		set, err := rowset.FromCompressed(compressed)
		if err != nil {
			return err
		}

		fi, err := os.Stat(path)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %dx%d, %d bytes, %d/%d rows non-empty, %d pixel data words\n",
			path,
			compressed.Width(), compressed.Height(),
			fi.Size(),
			set.Cardinality(), compressed.Height(),
			compressed.PixelDataWordCount(),
		)
	}
	return nil
}

var watchExts = map[string]bool{
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".gif":   true,
	".bmp":   true,
	".barch": true,
}

func watchable(name string) bool {
	if !watchExts[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	// Skip our own outputs so a conversion does not trigger another one.
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return !strings.HasSuffix(base, "-packed") && !strings.HasSuffix(base, "-unpacked")
}

func runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	verbose := fs.Bool("v", false, "verbose logging")
	interval := fs.Duration("interval", 2*time.Second, "minimum delay between directory scans")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("watch takes exactly one directory")
	}
	dir := fs.Arg(0)

	logger := newLogger(*verbose)
	logger.Info("watching", "dir", dir, "interval", *interval)

	limiter := rate.NewLimiter(rate.Every(*interval), 1)
	seen := make(map[string]bool)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for {
		if err := limiter.Wait(ctx); err != nil {
			// Context cancelled: drain in-flight conversions and stop.
			if werr := g.Wait(); werr != nil {
				return werr
			}
			return nil
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.IsDir() || !watchable(entry.Name()) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if seen[path] {
				continue
			}
			seen[path] = true

			g.Go(func() error {
				out, err := imageio.TranscodeFile(path, nil)
				if err != nil {
					// A bad file should not kill the watcher.
					logger.Error("transcode failed", "input", path, "error", err)
					return nil
				}
				logger.Info("transcoded", "input", path, "output", out)
				return nil
			})
		}
	}
}
