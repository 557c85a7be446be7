// Command checker evaluates tickets against a draw file offline.
//
//	checker -draw draw.csv -number 12346 [-stake-cents 10000]
//	checker -draw draw.csv -expected all-awards.csv
//	checker -draw draw.csv
//
// The draw file holds "number,tier" rows. The expected file holds
// "number,euros" rows for every number that wins something; numbers missing
// from it are expected to win nothing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"lottery-awards/internal/adapter/drawfile"
	"lottery-awards/internal/core/domain"
	"lottery-awards/pkg/logger"

	"github.com/rs/zerolog"
)

// maxReportedMismatches bounds how many mismatches are printed.
const maxReportedMismatches = 20

var errMismatch = errors.New("payouts differ from expected")

func main() {
	log := logger.NewWithWriter("info", zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("checker failed")
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("checker", flag.ContinueOnError)
	drawPath := fs.String("draw", "", "CSV file of winning numbers (number,tier)")
	number := fs.Int("number", -1, "ticket number to check")
	stakeCents := fs.Int64("stake-cents", domain.NominalStake().Minor(), "stake per ticket in cents")
	expectedPath := fs.String("expected", "", "CSV file of expected payouts (number,euros) to verify against")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *drawPath == "" {
		fs.Usage()
		return flag.ErrHelp
	}
	stake := domain.Cents(*stakeCents)

	draw, err := loadDraw(*drawPath)
	if err != nil {
		return err
	}

	switch {
	case *number >= 0:
		n, err := domain.ParseLotteryNumber(fmt.Sprint(*number))
		if err != nil {
			return err
		}
		return checkTicket(out, draw, n, stake)
	case *expectedPath != "":
		return verify(out, draw, *expectedPath, stake)
	default:
		summary, err := domain.SweepPayouts(draw.Numbers, 0, domain.MaxLotteryNumber, stake, nil)
		if err != nil {
			return err
		}
		printSummary(out, summary)
		return nil
	}
}

func loadDraw(path string) (*domain.Draw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening draw file: %w", err)
	}
	defer f.Close()

	numbers, err := drawfile.ReadWinningNumbers(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	draw := &domain.Draw{Name: path, Numbers: numbers}
	if err := draw.Validate(); err != nil {
		return nil, fmt.Errorf("invalid draw %s: %w", path, err)
	}
	return draw, nil
}

func checkTicket(out io.Writer, draw *domain.Draw, n domain.LotteryNumber, stake domain.Amount) error {
	ticket, err := domain.NewPlayedTicket(n, stake)
	if err != nil {
		return err
	}
	results, err := draw.Derive(ticket)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range results {
		for _, a := range r.Awards {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.WinningNumber.Number(), r.WinningNumber.Tier(), a.Rule, a.Amount)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "ticket %s with stake %s wins %s\n", ticket.Number(), stake, domain.GrandTotal(results))
	return nil
}

func verify(out io.Writer, draw *domain.Draw, path string, stake domain.Amount) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening expected file: %w", err)
	}
	defer f.Close()

	expected, err := drawfile.ReadExpectedPayouts(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	mismatches, summary, err := drawfile.Verify(draw.Numbers, expected, stake)
	if err != nil {
		return err
	}
	printSummary(out, summary)
	if len(mismatches) == 0 {
		fmt.Fprintln(out, "all payouts match")
		return nil
	}

	for i, m := range mismatches {
		if i == maxReportedMismatches {
			fmt.Fprintf(out, "... and %d more\n", len(mismatches)-i)
			break
		}
		fmt.Fprintf(out, "%s: expected %s, got %s\n", m.Number, m.Expected, m.Got)
	}
	return fmt.Errorf("%w: %d numbers", errMismatch, len(mismatches))
}

func printSummary(out io.Writer, s domain.PayoutSummary) {
	fmt.Fprintf(out, "numbers checked: %d\n", s.NumbersChecked)
	fmt.Fprintf(out, "winning tickets: %d\n", s.WinningTickets)
	fmt.Fprintf(out, "total payout:    %s\n", s.Total)
	if !s.Largest.IsZero() {
		fmt.Fprintf(out, "largest payout:  %s (%s)\n", s.Largest, s.LargestNumber)
	}
}
