package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/igolaizola/polo"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/rs/zerolog"
)

func main() {
	// Create signal based context
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
			cancel()
		}
		signal.Stop(c)
	}()

	// Launch command
	cmd := newCommand()
	if err := cmd.ParseAndRun(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *ffcli.Command {
	fs := flag.NewFlagSet("polo", flag.ExitOnError)

	return &ffcli.Command{
		ShortUsage: "polo [flags] <subcommand>",
		FlagSet:    fs,
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
		Subcommands: []*ffcli.Command{
			newCallCommand(),
			newTickerCommand(),
			newBookCommand(),
			newChartCommand(),
			newBalancesCommand(),
			newOrderCommand("buy"),
			newOrderCommand("sell"),
			newCancelCommand(),
		},
	}
}

// shared registers the flags every subcommand accepts and returns a
// function building the shell from them.
func shared(fs *flag.FlagSet) func() *polo.Shell {
	_ = fs.String("config", "", "config file (optional)")

	key := fs.String("key", "", "poloniex api key")
	secret := fs.String("secret", "", "poloniex api secret")
	url := fs.String("url", "", "poloniex base url (optional)")
	timeout := fs.Duration("timeout", 30*time.Second, "http timeout")
	debug := fs.Bool("debug", false, "enable debug logs")
	noColor := fs.Bool("no-color", false, "disable colored output")

	return func() *polo.Shell {
		level := zerolog.InfoLevel
		if *debug {
			level = zerolog.DebugLevel
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: *noColor}).
			Level(level).With().Timestamp().Logger()
		return polo.New(polo.Config{
			Key:     *key,
			Secret:  *secret,
			BaseURL: *url,
			Timeout: *timeout,
			Color:   !*noColor,
			Log: func(v ...interface{}) {
				logger.Debug().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
			},
		}, os.Stdout)
	}
}

func options() []ff.Option {
	return []ff.Option{
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix("POLO"),
	}
}

func newCallCommand() *ffcli.Command {
	fs := flag.NewFlagSet("call", flag.ExitOnError)
	shell := shared(fs)

	return &ffcli.Command{
		Name:       "call",
		ShortUsage: "polo call [flags] <command> [key=value...]",
		Options:    options(),
		ShortHelp:  "call any public or private command",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) < 1 {
				return errors.New("missing command")
			}
			return shell().Call(ctx, args[0], args[1:])
		},
	}
}

func newTickerCommand() *ffcli.Command {
	fs := flag.NewFlagSet("ticker", flag.ExitOnError)
	shell := shared(fs)

	return &ffcli.Command{
		Name:       "ticker",
		ShortUsage: "polo ticker [flags] [pair...]",
		Options:    options(),
		ShortHelp:  "show last price and 24h change",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			return shell().Ticker(ctx, args)
		},
	}
}

func newBookCommand() *ffcli.Command {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	shell := shared(fs)
	depth := fs.Int("depth", 20, "order book depth")

	return &ffcli.Command{
		Name:       "book",
		ShortUsage: "polo book [flags] <pair>",
		Options:    options(),
		ShortHelp:  "show the order book of a pair",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("missing pair")
			}
			return shell().Book(ctx, args[0], *depth)
		},
	}
}

func newChartCommand() *ffcli.Command {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	shell := shared(fs)
	period := fs.Duration("period", 24*time.Hour, "candle period")
	start := fs.String("start", "", "start date in UTC, 2006-01-02 15:04:05 (default one year ago)")
	end := fs.String("end", "", "end date in UTC, 2006-01-02 15:04:05 (default now)")

	return &ffcli.Command{
		Name:       "chart",
		ShortUsage: "polo chart [flags] <pair>",
		Options:    options(),
		ShortHelp:  "show candles of a pair",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("missing pair")
			}
			return shell().Chart(ctx, args[0], *period, *start, *end)
		},
	}
}

func newBalancesCommand() *ffcli.Command {
	fs := flag.NewFlagSet("balances", flag.ExitOnError)
	shell := shared(fs)

	return &ffcli.Command{
		Name:       "balances",
		ShortUsage: "polo balances [flags]",
		Options:    options(),
		ShortHelp:  "show non zero balances",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			return shell().Balances(ctx)
		},
	}
}

func newOrderCommand(side string) *ffcli.Command {
	fs := flag.NewFlagSet(side, flag.ExitOnError)
	shell := shared(fs)

	return &ffcli.Command{
		Name:       side,
		ShortUsage: fmt.Sprintf("polo %s [flags] <pair> <rate> <amount>", side),
		Options:    options(),
		ShortHelp:  fmt.Sprintf("place a %s limit order", side),
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 3 {
				return errors.New("expected pair, rate and amount")
			}
			return shell().Order(ctx, side, args[0], args[1], args[2])
		},
	}
}

func newCancelCommand() *ffcli.Command {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	shell := shared(fs)

	return &ffcli.Command{
		Name:       "cancel",
		ShortUsage: "polo cancel [flags] <order number>",
		Options:    options(),
		ShortHelp:  "cancel an open order",
		FlagSet:    fs,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return errors.New("missing order number")
			}
			return shell().Cancel(ctx, args[0])
		},
	}
}
