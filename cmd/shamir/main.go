// Command shamir splits a secret read from stdin into hex-encoded shares and
// recovers it from any threshold of them.
//
//	echo -n 'my secret' | shamir split -n 5 -k 3 > shares.txt
//	head -n 3 shares.txt | shamir recover
package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/izouxv/goShamir/internal/exitcode"
	"github.com/izouxv/goShamir/shamir"
	"github.com/izouxv/goShamir/sharetext"
	"github.com/izouxv/goShamir/utils"
)

var version = "dev"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Usage)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "shamir",
		Usage:   "split a secret into shares and recover it from a threshold of them",
		Version: version,
		Flags:   commonFlags(),
		Commands: []*cli.Command{
			newSplitCommand(),
			newRecoverCommand(),
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.NArg() > 0 {
				return cli.Exit(fmt.Sprintf("unknown command %q", cCtx.Args().First()), exitcode.Usage)
			}
			if err := cli.ShowAppHelp(cCtx); err != nil {
				return err
			}
			return cli.Exit("", exitcode.Usage)
		},
	}
}

func newSplitCommand() *cli.Command {
	return &cli.Command{
		Name:        "split",
		Usage:       "split the secret on stdin into hex shares, one per line",
		Description: "Reads the whole of stdin as the secret; a single trailing newline is dropped.",
		Flags:       splitFlags(),
		Action: func(cCtx *cli.Context) error {
			log := setupLogger(cCtx, cCtx.App.ErrWriter)
			n := cCtx.Int(flagShares)
			k := cCtx.Int(flagThreshold)

			rng, err := randomSource(cCtx, log)
			if err != nil {
				return cli.Exit(err, exitcode.Usage)
			}

			secret, err := io.ReadAll(cCtx.App.Reader)
			if err != nil {
				return cli.Exit(fmt.Errorf("failed to read secret: %w", err), exitcode.Input)
			}
			defer clear(secret)
			secret = trimNewline(secret)

			log.Debug("splitting secret", "bytes", len(secret), "shares", n, "threshold", k)
			shares, err := shamir.Split(secret, n, k, rng)
			if err != nil {
				return cli.Exit(fmt.Errorf("failed to split secret: %w", err), exitcode.Split)
			}

			if err := sharetext.WriteShares(cCtx.App.Writer, shares); err != nil {
				return cli.Exit(fmt.Errorf("failed to write shares: %w", err), exitcode.Output)
			}
			log.Info("Secret was successfully shared.", "shares", n, "threshold", k)
			return nil
		},
	}
}

func newRecoverCommand() *cli.Command {
	return &cli.Command{
		Name:  "recover",
		Usage: "recover the secret from hex shares on stdin",
		Description: "Reads whitespace-separated shares until end of input and combines all of them.\n" +
			"Fewer shares than the threshold produce a wrong secret, not an error.",
		Action: func(cCtx *cli.Context) error {
			log := setupLogger(cCtx, cCtx.App.ErrWriter)

			shares, err := sharetext.ReadShares(cCtx.App.Reader)
			if err != nil {
				return cli.Exit(fmt.Errorf("failed to read shares: %w", err), exitcode.Input)
			}
			log.Debug("recovering secret", "shares", len(shares))

			secret, err := shamir.Combine(shares)
			if err != nil {
				return cli.Exit(fmt.Errorf("failed to recover secret: %w", err), exitcode.Recover)
			}
			defer clear(secret)

			if _, err := fmt.Fprintf(cCtx.App.Writer, "%s\n", secret); err != nil {
				return cli.Exit(fmt.Errorf("failed to write secret: %w", err), exitcode.Output)
			}
			log.Info("Secret was successfully recovered.", "shares", len(shares))
			return nil
		},
	}
}

// randomSource returns crypto/rand unless a debug seed was given.
func randomSource(cCtx *cli.Context, log *slog.Logger) (io.Reader, error) {
	seedHex := cCtx.String(flagDebugSeed)
	if seedHex == "" {
		return rand.Reader, nil
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flagDebugSeed, err)
	}
	log.Warn("using deterministic randomness; shares are NOT secure")
	return utils.NewSeededReader(seed)
}

// trimNewline drops one trailing "\n" or "\r\n".
func trimNewline(b []byte) []byte {
	b, ok := bytes.CutSuffix(b, []byte("\n"))
	if ok {
		b, _ = bytes.CutSuffix(b, []byte("\r"))
	}
	return b
}
