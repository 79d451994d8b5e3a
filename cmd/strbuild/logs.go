package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"strbuilder-go/pkg/log"
)

var logsCommand = &cli.Command{
	Name:        "logs",
	Usage:       "print the most recent entries of the SQLite log database",
	UsageText:   "strbuild logs [--dbfile PATH] [-n NUMBER]",
	Description: `Reads the database configured as log_db (or the default one under ~/.strbuilder-go).`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "dbfile",
			Aliases: []string{"f"},
			Usage:   "Path to the SQLite log database file `PATH`",
			Value:   log.DefaultDBPath("strbuild"),
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "Number of entries `NUMBER`",
			Value:   100,
		},
	},
	Action: logsCmd,
}

func logsCmd(c *cli.Context) error {
	count := c.Int("count")
	if count <= 0 {
		return cli.Exit("Error: --count (-n) must be a positive number.", 1)
	}
	dbFile := c.String("dbfile")
	if _, err := os.Stat(dbFile); err != nil {
		return cli.Exit(fmt.Sprintf("Error: Database file not found at '%s'", dbFile), 1)
	}
	// Reading only; nothing below warn is written back while we query.
	if err := log.Init(dbFile, zerolog.WarnLevel); err != nil {
		return cli.Exit(fmt.Sprintf("Error opening log database: %v", err), 1)
	}
	defer log.Close()

	entries, err := log.GetLastNLogs(count)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error retrieving logs: %v", err), 1)
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No log entries found.")
		return nil
	}
	for _, e := range entries {
		fmt.Println(e.LogData)
	}
	return nil
}
