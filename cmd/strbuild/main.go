package main

import (
	stdlog "log"
	"os"

	"github.com/urfave/cli/v2"

	"strbuilder-go/pkg/config"
	"strbuilder-go/pkg/log"
)

// Version information - will be set at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Path to the configuration `FILE` (defaults to ./strbuilder.yaml if present)",
}

func main() {
	app := &cli.App{
		Name:    "strbuild",
		Usage:   "assemble input through a growable buffer",
		Version: Version + " (" + BuildTime + ")",
		Commands: []*cli.Command{
			catCommand,
			growCommand,
			logsCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		stdlog.Fatal(err)
	}
}

// loadConfig reads the configuration and points the logger at its sink.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	switch cfg.LogDB {
	case "":
		log.SetStd(cfg.Level())
	case "default":
		err = log.InitApp(c.App.Name, cfg.Level())
	default:
		err = log.Init(cfg.LogDB, cfg.Level())
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
