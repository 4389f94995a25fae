package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/bodgit/ppmview"
	"github.com/bodgit/ppmview/display"
	"github.com/bodgit/ppmview/scale"
	"github.com/urfave/cli/v2"
)

const defaultFile = "image.ppm"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newViewer(c *cli.Context) *ppmview.Viewer {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return ppmview.New(c.Int("max-pixels"), logger)
}

func fileArg(c *cli.Context) string {
	if c.NArg() > 0 {
		return c.Args().First()
	}
	return c.String("file")
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "ppmview"
	app.Usage = "Binary PPM (P6) image viewer"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			EnvVars: []string{"PPMVIEW_FILE"},
			Value:   defaultFile,
			Usage:   "image to use when FILE is not given",
		},
		&cli.IntFlag{
			Name:    "max-pixels",
			EnvVars: []string{"PPMVIEW_MAX_PIXELS"},
			Usage:   "refuse images with more pixels than this, 0 for no limit",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "view",
			Usage:       "Display an image in a window",
			Description: "",
			ArgsUsage:   "[FILE]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "resizable",
					EnvVars: []string{"PPMVIEW_RESIZABLE"},
					Usage:   "allow resizing, scaling the image to fit",
				},
				&cli.Float64Flag{
					Name:    "max-scale",
					EnvVars: []string{"PPMVIEW_MAX_SCALE"},
					Value:   scale.DefaultMaxScale,
					Usage:   "maximum zoom of a resizable window",
				},
				&cli.StringFlag{
					Name:  "title",
					Value: "Image Viewer",
					Usage: "window title",
				},
				&cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "initial width of a resizable window",
				},
				&cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "initial height of a resizable window",
				},
			},
			Action: func(c *cli.Context) error {
				v := newViewer(c)

				if err := v.View(fileArg(c), display.Options{
					Title:     c.String("title"),
					Resizable: c.Bool("resizable"),
					MaxScale:  c.Float64("max-scale"),
					Width:     float32(c.Int("width")),
					Height:    float32(c.Int("height")),
				}); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "Print the dimensions of an image",
			Description: "",
			ArgsUsage:   "[FILE]",
			Action: func(c *cli.Context) error {
				v := newViewer(c)

				config, err := v.Info(fileArg(c))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Fprintf(c.App.Writer, "ppm %dx%d\n", config.Width, config.Height)

				return nil
			},
		},
		{
			Name:        "convert",
			Usage:       "Convert an image to another format",
			Description: "The output format is chosen by the extension of DST, one of " + strings.Join(ppmview.Formats, ", "),
			ArgsUsage:   "SRC DST",
			Flags: []cli.Flag{
				&cli.UintFlag{
					Name:  "max",
					Usage: "shrink so neither side exceeds this many pixels",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				v := newViewer(c)

				if err := v.Convert(c.Args().Get(0), c.Args().Get(1), c.Uint("max")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "convert-dir",
			Usage:       "Convert every image under a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: "png",
					Usage: "output format",
				},
				&cli.UintFlag{
					Name:  "max",
					Usage: "shrink so neither side exceeds this many pixels",
				},
				&cli.IntFlag{
					Name:  "workers",
					Value: 10,
					Usage: "number of images converted concurrently",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				v := newViewer(c)

				if err := v.ConvertDir(c.Args().First(), c.String("format"), c.Uint("max"), c.Int("workers")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
