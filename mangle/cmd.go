package mangle

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"

	"picto/area"
	"picto/buffer"
	"picto/color"
	"picto/imagefile"
	"picto/orient"
	"picto/palette"
	"picto/parallel"
	"picto/sampler"
	"picto/scaler"
)

type CLICmd struct {
	Scan    string  `help:"Source folder to scan" default:"."`
	Dest    string  `help:"Destination folder for processed pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"mangled"`
	Resize  bool    `help:"Resize image" default:"false" group:"resize"`
	Width   int     `help:"Max width" group:"resize"`
	Height  int     `help:"Max height" group:"resize"`
	Crop    bool    `help:"Crop image to maintain requested aspect ration" default:"false" group:"resize"`
	Fill    string  `help:"If given and not cropping, will fill background with this color to maintain destination aspect ratio" group:"resize"`
	Filter  string  `help:"Resampling kernel (nearest, linear, cubic, catmullrom, mitchell, gaussian, lanczos2, lanczos3)" default:"cubic" group:"resize"`
	Flip    string  `help:"Mirror the picture" enum:"none,vertical,horizontal" default:"none" group:"transform"`
	Rotate  int     `help:"Turn clockwise by a multiple of 90 degrees, negative turns counter-clockwise" default:"0" group:"transform"`
	Blur    float64 `help:"Gaussian blur standard deviation in pixels, 0 disables" default:"0" group:"filter"`
	Sharpen float64 `help:"Unsharp mask strength at a one pixel radius, 0 disables" default:"0" group:"filter"`
	Palette string  `help:"Palette name (bw, gray4, gray16, vga16, spectra6, websafe, plan9) or PAL file in RIFF format to apply" group:"palette"`
	Dither  bool    `help:"Apply dithering" default:"false" group:"palette"`
	Format  string  `help:"Output format of mangled image. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`

	FillColor *color.Rgba       `kong:"-"`
	sampler   sampler.Sampler   `kong:"-"`
	flip      *area.Orientation `kong:"-"`
	pal       palette.Palette   `kong:"-"`
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

	if c.Resize {
		switch {
		case (c.Width < 0):
			return fmt.Errorf("invalid resize width: %d", c.Width)
		case (c.Height < 0):
			return fmt.Errorf("invalid resize height: %d", c.Height)
		case (c.Width == 0) && (c.Height == 0):
			return fmt.Errorf("no resize dimensions given")
		}
	}

	if c.sampler, err = sampler.ByName(c.Filter); err != nil {
		return err
	}

	if (!c.Crop) && (c.Fill != "") {
		fill, err := parseHexToColor(c.Fill)
		if err != nil {
			return err
		}
		c.FillColor = &fill
	}

	if c.Flip != "" && c.Flip != "none" {
		o, err := area.ParseOrientation(c.Flip)
		if err != nil {
			return err
		}
		c.flip = &o
	}

	if c.Rotate%90 != 0 {
		return fmt.Errorf("invalid rotation %d: must be a multiple of 90", c.Rotate)
	}

	if c.Blur < 0 {
		return fmt.Errorf("invalid blur: %g", c.Blur)
	}

	if c.Palette != "" {
		if c.pal, err = palette.LoadPalette(c.Palette); err != nil {
			return err
		}
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

		fileName := file.Name()
		pool.Go(func() error {
			logger := slog.Default().With("file", filepath.Join(c.Scan, fileName))
			if err := c.process(logger, fileName); err != nil {
				logger.Error("could not mangle image", "error", err)
				return err
			}
			return nil
		})
	}

	stats := pool.Wait()
	slog.Info("stats", "processed", stats.Processed, "errors", stats.Errors,
		"total", stats.Total())

	if stats.Errors > 0 {
		return fmt.Errorf("error processing %d files", stats.Errors)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, fileName string) error {
	img, imgFormat, err := imagefile.Open[uint16, color.Rgba](filepath.Join(c.Scan, fileName))
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	if c.Resize {
		img = resize(logger, img, c.Width, c.Height, c.Crop, c.FillColor, c.sampler)
	}

	if c.flip != nil {
		logger.Info("flipping", "orientation", *c.flip)
		v := img.AsView()
		orient.Flip(v, *c.flip)
		v.Release()
	}

	if c.Rotate%360 != 0 {
		logger.Info("rotating", "degrees", c.Rotate)
		img = orient.Rotate[uint16, color.Rgba](img.AsRead(), c.Rotate)
	}

	if c.Blur > 0 {
		logger.Info("blurring", "sigma", c.Blur)
		img = scaler.Blur(img.AsRead(), c.Blur)
	}

	if c.Sharpen != 0 {
		logger.Info("sharpening", "amount", c.Sharpen)
		img = scaler.Sharpen(img.AsRead(), 1, c.Sharpen)
	}

	if c.pal != nil {
		img = repalette(logger.With("palette", c.Palette), img, c.pal, c.Dither)
	}

	outFormat, err := imagefile.OutputFormat(c.Format, imgFormat)
	if err != nil {
		return err
	}

	path, err := imagefile.Save(buffer.ImageOf(img.AsRead()), outFormat, c.Dest, fileName)
	if err != nil {
		return fmt.Errorf("could not save image: %w", err)
	}
	logger.Debug("saved", "to", path)

	return nil
}

// parseHexToColor reads #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
func parseHexToColor(s string) (color.Rgba, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.Rgba{}, fmt.Errorf("invalid fill color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	hex := s[1:]

	var digits int
	switch len(hex) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return color.Rgba{}, fmt.Errorf("invalid fill color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}

	v := [4]float32{1, 1, 1, 1}
	for i := range len(hex) / digits {
		n, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return color.Rgba{}, fmt.Errorf("could not read color: %w", err)
		}
		if digits == 1 {
			n |= n << 4
		}
		v[i] = float32(n) / 0xff
	}

	return color.NewRgba(v[0], v[1], v[2], v[3]), nil
}
