// Command operator-token issues a bearer token for publishing draws and
// requesting payout reports. It signs with the same JWT settings as the API.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"lottery-awards/config"
	"lottery-awards/internal/service"
	"lottery-awards/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	log := logger.NewWithWriter("info", zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("issuing operator token failed")
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("operator-token", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (defaults to ./config.yaml and LTA_* env)")
	operator := fs.String("operator", "", "operator id to put in the token subject")
	expiry := fs.Duration("expiry", 0, "token lifetime (defaults to jwt.expiry)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *operator == "" {
		fs.Usage()
		return flag.ErrHelp
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is not configured")
	}

	lifetime := cfg.JWT.Expiry
	if *expiry > 0 {
		lifetime = *expiry
	}

	token, expiresAt, err := service.NewJWTTokenService(cfg.JWT.Secret, lifetime, cfg.JWT.Issuer).Generate(*operator)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
	return nil
}
