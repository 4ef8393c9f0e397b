package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

const (
	flagShares     = "shares"
	flagThreshold  = "threshold"
	flagDebugSeed  = "debug-seed"
	flagLogJSON    = "log-json"
	flagLogDebug   = "log-debug"
	flagLogUID     = "log-uid"
	flagLogService = "log-service"
)

// Flags are built per app: urfave/cli records env lookups on the flag value
// itself, so sharing one across runs leaks state between them.

func splitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     flagShares,
			Aliases:  []string{"n"},
			Usage:    "total number of shares to produce",
			EnvVars:  []string{"SHAMIR_SHARES"},
			Required: true,
		},
		&cli.IntFlag{
			Name:     flagThreshold,
			Aliases:  []string{"k"},
			Usage:    "number of shares needed to recover the secret",
			EnvVars:  []string{"SHAMIR_THRESHOLD"},
			Required: true,
		},
		&cli.StringFlag{
			Name:   flagDebugSeed,
			Usage:  "hex seed for a deterministic randomness source; never use with real secrets",
			Hidden: true,
		},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    flagLogJSON,
			Value:   false,
			Usage:   "log in JSON format",
			EnvVars: []string{"SHAMIR_LOG_JSON"},
		},
		&cli.BoolFlag{
			Name:    flagLogDebug,
			Value:   false,
			Usage:   "log debug messages",
			EnvVars: []string{"SHAMIR_LOG_DEBUG"},
		},
		&cli.BoolFlag{
			Name:  flagLogUID,
			Value: false,
			Usage: "generate a uuid and add to all log messages",
		},
		&cli.StringFlag{
			Name:  flagLogService,
			Value: "shamir",
			Usage: "add 'service' tag to logs",
		},
	}
}

// setupLogger builds the logger for one invocation. Logs go to w, which is
// stderr in production; stdout is reserved for shares and secrets.
func setupLogger(cCtx *cli.Context, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cCtx.Bool(flagLogDebug) {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if cCtx.Bool(flagLogJSON) {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler).With("service", cCtx.String(flagLogService), "version", version)
	if cCtx.Bool(flagLogUID) {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}
