package orient

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"picto/buffer"
	"picto/color"
	"picto/imagefile"
	"picto/parallel"
)

type CLICmd struct {
	Scan   string `help:"Source folder to scan" default:"."`
	Dest   string `help:"Destination folder. Relative to scan dir if not absolute." default:"oriented"`
	To     string `help:"Orientation every picture should end up in" enum:"portrait,landscape" default:"landscape"`
	Turn   int    `help:"Degrees to turn mismatched pictures by, negative turns counter-clockwise" default:"90"`
	Move   bool   `help:"Move pictures that already match instead of copying them" default:"false"`
	Format string `help:"Output format of turned pictures. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}
	if c.Dest == c.Scan {
		return fmt.Errorf("destination must differ from scan folder")
	}

	if Degrees(c.Turn)%180 != 90 {
		return fmt.Errorf("invalid turn %d: must be an odd multiple of 90", c.Turn)
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := file.Name()
		pool.Go(func() error {
			logger := slog.Default().With("file", filepath.Join(c.Scan, name))
			if err := c.process(logger, name); err != nil {
				logger.Error("could not orient image", "error", err)
				return err
			}
			return nil
		})
	}

	stats := pool.Wait()
	slog.Info("stats", "processed", stats.Processed, "errors", stats.Errors, "total", stats.Total())

	if stats.Errors > 0 {
		return fmt.Errorf("error processing %d files", stats.Errors)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, name string) error {
	src := filepath.Join(c.Scan, name)

	conf, srcFormat, err := imagefile.Config(src)
	if err != nil {
		return fmt.Errorf("could not read image: %w", err)
	}

	if matches(conf, c.To) {
		dest := filepath.Join(c.Dest, name)
		if c.Move {
			return moveFile(logger, src, dest)
		}
		return copyFile(logger, src, dest)
	}

	outFormat, err := imagefile.OutputFormat(c.Format, srcFormat)
	if err != nil {
		return err
	}

	img, _, err := imagefile.Open[uint16, color.Rgba](src)
	if err != nil {
		return err
	}

	logger.Info("turning", "degrees", c.Turn, "width", conf.Width, "height", conf.Height)
	turned := Rotate[uint16, color.Rgba](img.AsRead(), c.Turn)

	path, err := imagefile.Save(buffer.ImageOf(turned.AsRead()), outFormat, c.Dest, name)
	if err != nil {
		return err
	}
	logger.Debug("saved", "to", path)

	if c.Move {
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("could not remove source file: %w", err)
		}
	}
	return nil
}

// matches reports whether conf already has the wanted orientation. Square
// pictures match either.
func matches(conf image.Config, to string) bool {
	switch {
	case conf.Width == conf.Height:
		return true
	case to == "portrait":
		return conf.Height > conf.Width
	default:
		return conf.Width > conf.Height
	}
}
