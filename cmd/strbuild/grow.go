package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"strbuilder-go/pkg/log"
	"strbuilder-go/pkg/strbuilder"
)

var growCommand = &cli.Command{
	Name:      "grow",
	Usage:     "append synthetic data in fixed size chunks and report growth behaviour",
	UsageText: "strbuild grow [--total SIZE] [--chunk SIZE]",
	Flags: []cli.Flag{
		configFlag,
		&cli.StringFlag{
			Name:    "total",
			Aliases: []string{"t"},
			Usage:   "Total bytes to append `SIZE` (e.g. 64MiB)",
			Value:   "1MiB",
		},
		&cli.StringFlag{
			Name:  "chunk",
			Usage: "Bytes per append `SIZE`; 1 uses single byte appends",
			Value: "100B",
		},
	},
	Action: growCmd,
}

func growCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading configuration: %v", err), 1)
	}
	defer log.Close()

	total, err := humanize.ParseBytes(c.String("total"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error parsing --total: %v", err), 1)
	}
	chunk, err := humanize.ParseBytes(c.String("chunk"))
	if err != nil || chunk == 0 {
		return cli.Exit(fmt.Sprintf("Error parsing --chunk %q: must be a positive size", c.String("chunk")), 1)
	}

	opts, err := cfg.BuilderOptions()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error in configuration: %v", err), 1)
	}
	b, err := strbuilder.New(opts...)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error creating buffer: %v", err), 1)
	}
	defer b.Release()

	start := time.Now()
	if err := fill(b, int(total), int(chunk)); err != nil {
		printStats(b.Stats())
		return cli.Exit(fmt.Sprintf("Error after %s: %v", humanize.IBytes(uint64(b.Len())), err), 1)
	}
	elapsed := time.Since(start)

	log.Info().Object("stats", b.Stats()).Dur("elapsed", elapsed).Msg("grow run finished")
	printStats(b.Stats())
	fmt.Fprintf(os.Stderr, "elapsed:  %s (%s/s)\n", elapsed,
		humanize.IBytes(uint64(float64(b.Len())/max(elapsed.Seconds(), 1e-9))))
	return nil
}

func fill(b *strbuilder.Builder, total, chunk int) error {
	if chunk == 1 {
		for i := 0; i < total; i++ {
			if err := b.AppendByte('x'); err != nil {
				return err
			}
		}
		return nil
	}
	piece := bytes.Repeat([]byte{'x'}, chunk)
	for remaining := total; remaining > 0; remaining -= chunk {
		if err := b.AppendBytes(piece[:min(chunk, remaining)]); err != nil {
			return err
		}
	}
	return nil
}
