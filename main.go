package main

import (
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/Hugo0x1337/otclient-1/pkg/game/renderer"
	_ "github.com/Hugo0x1337/otclient-1/pkg/game/renderer/ebiten"
	_ "github.com/Hugo0x1337/otclient-1/pkg/game/renderer/tui"
	"github.com/Hugo0x1337/otclient-1/pkg/game/scene"
)

func main() {
	app := cli.NewApp()
	app.Name = "mapviewer"
	app.Usage = "isometric tile map viewer"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "renderer",
			Value: "ebiten",
			Usage: fmt.Sprintf("rendering backend %v", renderer.Names()),
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "window width in pixels",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "window height in pixels",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "demo map seed (0 = random)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("exited with error")
	}
}

func run(c *cli.Context) error {
	if c.Bool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	gotext.Configure("po", "en_GB", "default")

	backend, err := renderer.Create(c.String("renderer"))
	if err != nil {
		return err
	}
	renderer.SetRenderer(backend)

	if err := backend.Init(renderer.Options{
		Width:  c.Int("width"),
		Height: c.Int("height"),
	}); err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	defer backend.Shutdown()

	return backend.Run(scene.New(c.Int64("seed")))
}
