package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"strbuilder-go/internal/fn"
	"strbuilder-go/pkg/config"
	"strbuilder-go/pkg/log"
	"strbuilder-go/pkg/strbuilder"
	"strbuilder-go/pkg/transform"
	"strbuilder-go/pkg/util"
)

var catCommand = &cli.Command{
	Name:      "cat",
	Usage:     "concatenate files (or stdin) into one buffer and write it to stdout",
	UsageText: "strbuild cat [options] [FILE...]",
	Flags: []cli.Flag{
		configFlag,
		&cli.BoolFlag{
			Name:    "lines",
			Aliases: []string{"l"},
			Usage:   "Terminate every input line with a newline",
		},
		&cli.StringFlag{
			Name:  "compress",
			Usage: "Output encoding `NAME`: noop, gzip or zstd (overrides config)",
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "Print length, capacity and reallocation count to stderr",
		},
	},
	Action: catCmd,
}

func catCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading configuration: %v", err), 1)
	}
	defer log.Close()

	opts, err := cfg.BuilderOptions()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error in configuration: %v", err), 1)
	}
	sb, err := util.NewStrBuf(opts...)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error creating buffer: %v", err), 1)
	}
	b := sb.Builder()
	defer b.Release()

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		if err := appendInput(sb, name, c.Bool("lines")); err != nil {
			return cli.Exit(fmt.Sprintf("Error reading %s: %v", name, err), 1)
		}
	}
	log.Info().Object("stats", b.Stats()).Int("inputs", len(inputs)).Msg("input assembled")

	out, err := encodeOutput(cfg, c.String("compress"), b.View())
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error encoding output: %v", err), 1)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return cli.Exit(fmt.Sprintf("Error writing output: %v", err), 1)
	}

	if c.Bool("stats") {
		printStats(b.Stats())
	}
	return nil
}

func appendInput(sb *util.StrBuf, name string, lines bool) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if !lines {
		_, err := sb.Builder().ReadFrom(r)
		return err
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if err := sb.WriteLine(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func encodeOutput(cfg *config.Config, override string, data []byte) ([]byte, error) {
	p, err := transform.PipelineByName(fn.Or(override, cfg.Compression, "noop"))
	if err != nil {
		return nil, err
	}
	return p.Encode(data)
}

func printStats(s strbuilder.Stats) {
	fmt.Fprintf(os.Stderr, "length:   %s (%d bytes)\n", humanize.IBytes(uint64(s.Len)), s.Len)
	fmt.Fprintf(os.Stderr, "capacity: %s (%d bytes)\n", humanize.IBytes(uint64(s.Cap)), s.Cap)
	fmt.Fprintf(os.Stderr, "reallocs: %d\n", s.Reallocs)
}
