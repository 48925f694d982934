package polo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/igolaizola/polo/pkg/poloniex"
	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"
)

type Config struct {
	Key     string
	Secret  string
	BaseURL string
	Timeout time.Duration
	Color   bool
	Log     func(v ...interface{})
}

// Shell runs poloniex commands and prints their results.
type Shell struct {
	client *poloniex.Client
	out    io.Writer
	au     aurora.Aurora
}

func New(cfg Config, out io.Writer) *Shell {
	opts := []poloniex.Option{}
	if cfg.BaseURL != "" {
		opts = append(opts, poloniex.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, poloniex.WithTimeout(cfg.Timeout))
	}
	if cfg.Log != nil {
		opts = append(opts, poloniex.WithLog(cfg.Log))
	}
	return &Shell{
		client: poloniex.New(cfg.Key, cfg.Secret, opts...),
		out:    out,
		au:     aurora.NewAurora(cfg.Color),
	}
}

// Call sends any command with "key=value" arguments and prints the
// response as indented JSON.
func (s *Shell) Call(ctx context.Context, command string, args []string) error {
	params, err := poloniex.ParseParams(args)
	if err != nil {
		return err
	}
	js, err := s.client.Call(ctx, command, params)
	if err != nil {
		return err
	}
	if msg, ok := poloniex.APIErrorMessage(js); ok {
		fmt.Fprintln(s.out, s.au.Red(fmt.Sprintf("%s: %s", command, msg)))
		return nil
	}
	b, err := json.MarshalIndent(js.Interface(), "", "  ")
	if err != nil {
		return fmt.Errorf("polo: couldn't encode response: %w", err)
	}
	fmt.Fprintln(s.out, string(b))
	return nil
}

// Ticker prints last price and 24h change of the given pairs, all of them if
// none is given.
func (s *Shell) Ticker(ctx context.Context, pairs []string) error {
	tickers, err := s.client.Tickers(ctx)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		for p := range tickers {
			pairs = append(pairs, p)
		}
		sort.Strings(pairs)
	}
	for _, p := range pairs {
		t, ok := tickers[strings.ToUpper(p)]
		if !ok {
			return fmt.Errorf("polo: pair %s not found", p)
		}
		perc := poloniex.RoundPercent(t.PercentChange, 2)
		colored := s.au.Green(perc)
		if t.PercentChange.Sign() < 0 {
			colored = s.au.Red(perc)
		}
		fmt.Fprintf(s.out, "%s %s %s\n", strings.ToUpper(p), t.Last, colored)
	}
	return nil
}

// Book prints the order book of pair.
func (s *Shell) Book(ctx context.Context, pair string, depth int) error {
	book, err := s.client.OrderBookFor(ctx, pair, depth)
	if err != nil {
		return err
	}
	for i := len(book.Asks) - 1; i >= 0; i-- {
		fmt.Fprintf(s.out, "%s %s %s\n", s.au.Red("ask"), book.Asks[i].Price(), book.Asks[i].Amount())
	}
	for _, b := range book.Bids {
		fmt.Fprintf(s.out, "%s %s %s\n", s.au.Green("bid"), b.Price(), b.Amount())
	}
	return nil
}

// Chart prints candles of pair between start and end, UTC dates formatted
// as poloniex.DateLayout. Empty dates mean one year ago and now.
func (s *Shell) Chart(ctx context.Context, pair string, period time.Duration, start, end string) error {
	now := time.Now().UTC()
	from, to := now.Add(-poloniex.Year), now
	if start != "" {
		ts, err := poloniex.UTCToEpoch(start, "")
		if err != nil {
			return err
		}
		from = time.Unix(ts, 0)
	}
	if end != "" {
		ts, err := poloniex.UTCToEpoch(end, "")
		if err != nil {
			return err
		}
		to = time.Unix(ts, 0)
	}
	if period <= 0 {
		period = poloniex.Day
	}
	candles, err := s.client.Chart(ctx, pair, period, from, to)
	if err != nil {
		return err
	}
	for _, c := range candles {
		fmt.Fprintf(s.out, "%s open %s high %s low %s close %s volume %s\n",
			poloniex.EpochToUTC(c.Date, ""), c.Open, c.High, c.Low, c.Close, c.Volume)
	}
	return nil
}

// Balances prints currencies with available or on order amounts.
func (s *Shell) Balances(ctx context.Context) error {
	balances, err := s.client.BalanceSheet(ctx)
	if err != nil {
		return err
	}
	var currencies []string
	for c, b := range balances {
		if b.Available.IsZero() && b.OnOrders.IsZero() {
			continue
		}
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)
	for _, c := range currencies {
		b := balances[c]
		fmt.Fprintf(s.out, "%s available %s on orders %s btc %s\n", s.au.Bold(c), b.Available, b.OnOrders, b.BTCValue)
	}
	return nil
}

// Order places a buy or sell limit order.
func (s *Shell) Order(ctx context.Context, side, pair, rate, amount string) error {
	r, err := decimal.NewFromString(rate)
	if err != nil {
		return fmt.Errorf("polo: invalid rate %s: %w", rate, err)
	}
	a, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("polo: invalid amount %s: %w", amount, err)
	}
	res, err := s.client.Order(ctx, side, strings.ToUpper(pair), r, a)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "order %s placed\n", res.OrderNumber)
	for _, t := range res.ResultingTrades {
		fmt.Fprintf(s.out, "%s %s %s at %s total %s\n", t.Date, t.Type, t.Amount, t.Rate, t.Total)
	}
	return nil
}

// Cancel cancels an open order.
func (s *Shell) Cancel(ctx context.Context, orderNumber string) error {
	return s.Call(ctx, "cancelOrder", []string{"orderNumber=" + orderNumber})
}
