package poloniex

import (
	"context"
	"fmt"
	"time"

	simplejson "github.com/bitly/go-simplejson"
	"github.com/shopspring/decimal"
)

const (
	defaultPair        = "all"
	defaultDepth       = 20
	defaultLendingRate = 2
	loanDuration       = 2
)

// Public

func (c *Client) MarketTicker(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "returnTicker", nil)
}

func (c *Client) MarketVolume(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "return24hVolume", nil)
}

func (c *Client) MarketStatus(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "returnCurrencies", nil)
}

func (c *Client) MarketLoans(ctx context.Context, coin string) (*simplejson.Json, error) {
	return c.Call(ctx, "returnLoanOrders", Params{{"currency", coin}})
}

// MarketOrders returns the order book of pair, "all" if empty. Depth
// defaults to 20.
func (c *Client) MarketOrders(ctx context.Context, pair string, depth int) (*simplejson.Json, error) {
	return c.Call(ctx, "returnOrderBook", orderBookParams(pair, depth))
}

// MarketChart returns daily candles for the last year.
func (c *Client) MarketChart(ctx context.Context, pair string) (*simplejson.Json, error) {
	end := time.Now()
	return c.MarketChartRange(ctx, pair, Day, end.Add(-Year), end)
}

// MarketChartRange returns candles of pair between start and end. A zero end
// means now and a zero start one year before end.
func (c *Client) MarketChartRange(ctx context.Context, pair string, period time.Duration, start, end time.Time) (*simplejson.Json, error) {
	return c.Call(ctx, "returnChartData", chartParams(pair, period, start, end))
}

// Private

func (c *Client) MyBalances(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "returnBalances", nil)
}

func (c *Client) MyCompleteBalances(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "returnCompleteBalances", nil)
}

func (c *Client) MyAvailBalances(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "returnAvailableAccountBalances", nil)
}

func (c *Client) MyTradeableBalances(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "returnTradableBalances", nil)
}

func (c *Client) MyAddresses(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "returnDepositAddresses", nil)
}

func (c *Client) GenerateNewAddress(ctx context.Context, coin string) (*simplejson.Json, error) {
	return c.Call(ctx, "generateNewAddress", Params{{"currency", coin}})
}

// MyDepositsWithdraws returns deposits and withdrawals between start and
// end. Zero times are left out of the request.
func (c *Client) MyDepositsWithdraws(ctx context.Context, start, end time.Time) (*simplejson.Json, error) {
	var p Params
	if !start.IsZero() {
		p = p.Set("start", start)
	}
	if !end.IsZero() {
		p = p.Set("end", end)
	}
	return c.Call(ctx, "returnDepositsWithdrawals", p)
}

func (c *Client) MyOrders(ctx context.Context, pair string) (*simplejson.Json, error) {
	return c.Call(ctx, "returnOpenOrders", Params{{"currencyPair", pairOrAll(pair)}})
}

func (c *Client) MyTradeHist(ctx context.Context, pair string) (*simplejson.Json, error) {
	return c.Call(ctx, "returnTradeHistory", Params{{"currencyPair", pair}})
}

func (c *Client) MyActiveLoans(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "returnActiveLoans", nil)
}

func (c *Client) MyOpenLoanOrders(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "returnOpenLoanOffers", nil)
}

func (c *Client) MyMarginAccountSummary(ctx context.Context) (*simplejson.Json, error) {
	return c.Call(ctx, "returnMarginAccountSummary", nil)
}

func (c *Client) MyMarginPosition(ctx context.Context, pair string) (*simplejson.Json, error) {
	return c.Call(ctx, "getMarginPosition", Params{{"currencyPair", pairOrAll(pair)}})
}

// CreateLoanOrder offers a two day loan without auto renew.
func (c *Client) CreateLoanOrder(ctx context.Context, coin string, amount, rate decimal.Decimal) (*simplejson.Json, error) {
	return c.Call(ctx, "createLoanOffer", Params{
		{"currency", coin},
		{"amount", amount},
		{"duration", loanDuration},
		{"autoRenew", 0},
		{"lendingRate", rate},
	})
}

func (c *Client) CancelLoanOrder(ctx context.Context, orderNumber string) (*simplejson.Json, error) {
	return c.Call(ctx, "cancelLoanOffer", Params{{"orderNumber", orderNumber}})
}

func (c *Client) ToggleAutoRenew(ctx context.Context, orderNumber string) (*simplejson.Json, error) {
	return c.Call(ctx, "toggleAutoRenew", Params{{"orderNumber", orderNumber}})
}

func (c *Client) Buy(ctx context.Context, pair string, rate, amount decimal.Decimal) (*simplejson.Json, error) {
	return c.Call(ctx, "buy", orderParams(pair, rate, amount))
}

func (c *Client) Sell(ctx context.Context, pair string, rate, amount decimal.Decimal) (*simplejson.Json, error) {
	return c.Call(ctx, "sell", orderParams(pair, rate, amount))
}

func (c *Client) CancelOrder(ctx context.Context, orderNumber string) (*simplejson.Json, error) {
	return c.Call(ctx, "cancelOrder", Params{{"orderNumber", orderNumber}})
}

func (c *Client) MoveOrder(ctx context.Context, orderNumber string, rate, amount decimal.Decimal) (*simplejson.Json, error) {
	return c.Call(ctx, "moveOrder", Params{
		{"orderNumber", orderNumber},
		{"rate", rate},
		{"amount", amount},
	})
}

func (c *Client) Withdraw(ctx context.Context, coin string, amount decimal.Decimal, address string) (*simplejson.Json, error) {
	return c.Call(ctx, "withdraw", Params{
		{"currency", coin},
		{"amount", amount},
		{"address", address},
	})
}

func (c *Client) TransferBalance(ctx context.Context, coin string, amount decimal.Decimal, fromAccount, toAccount string) (*simplejson.Json, error) {
	return c.Call(ctx, "transferBalance", Params{
		{"currency", coin},
		{"amount", amount},
		{"fromAccount", fromAccount},
		{"toAccount", toAccount},
	})
}

// MarginBuy places a margin buy order, a zero lending rate means 2%.
func (c *Client) MarginBuy(ctx context.Context, pair string, rate, amount, lendingRate decimal.Decimal) (*simplejson.Json, error) {
	return c.Call(ctx, "marginBuy", marginParams(pair, rate, amount, lendingRate))
}

// MarginSell places a margin sell order, a zero lending rate means 2%.
func (c *Client) MarginSell(ctx context.Context, pair string, rate, amount, lendingRate decimal.Decimal) (*simplejson.Json, error) {
	return c.Call(ctx, "marginSell", marginParams(pair, rate, amount, lendingRate))
}

func (c *Client) CloseMarginPosition(ctx context.Context, pair string) (*simplejson.Json, error) {
	return c.Call(ctx, "closeMarginPosition", Params{{"currencyPair", pair}})
}

// Typed

// Tickers returns the tickers of every market keyed by pair.
func (c *Client) Tickers(ctx context.Context) (map[string]Ticker, error) {
	var tickers map[string]Ticker
	if err := c.Do(ctx, "returnTicker", nil, &tickers); err != nil {
		return nil, err
	}
	return tickers, nil
}

// OrderBookFor returns the order book of a single pair.
func (c *Client) OrderBookFor(ctx context.Context, pair string, depth int) (*OrderBook, error) {
	var book OrderBook
	if err := c.Do(ctx, "returnOrderBook", orderBookParams(pair, depth), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) Chart(ctx context.Context, pair string, period time.Duration, start, end time.Time) ([]ChartCandle, error) {
	var candles []ChartCandle
	if err := c.Do(ctx, "returnChartData", chartParams(pair, period, start, end), &candles); err != nil {
		return nil, err
	}
	return candles, nil
}

// AvailableBalances returns the available amount of every currency.
func (c *Client) AvailableBalances(ctx context.Context) (Balances, error) {
	var balances Balances
	if err := c.Do(ctx, "returnBalances", nil, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

func (c *Client) BalanceSheet(ctx context.Context) (map[string]CompleteBalance, error) {
	var balances map[string]CompleteBalance
	if err := c.Do(ctx, "returnCompleteBalances", nil, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// Order places a buy or sell limit order depending on command.
func (c *Client) Order(ctx context.Context, command, pair string, rate, amount decimal.Decimal) (*OrderResult, error) {
	if command != "buy" && command != "sell" {
		return nil, fmt.Errorf("poloniex: %s isn't an order command", command)
	}
	var res OrderResult
	if err := c.Do(ctx, command, orderParams(pair, rate, amount), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func pairOrAll(pair string) string {
	if pair == "" {
		return defaultPair
	}
	return pair
}

func orderBookParams(pair string, depth int) Params {
	if depth <= 0 {
		depth = defaultDepth
	}
	return Params{{"currencyPair", pairOrAll(pair)}, {"depth", depth}}
}

func chartParams(pair string, period time.Duration, start, end time.Time) Params {
	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.Add(-Year)
	}
	return Params{
		{"currencyPair", pair},
		{"period", period},
		{"start", start},
		{"end", end},
	}
}

func orderParams(pair string, rate, amount decimal.Decimal) Params {
	return Params{
		{"currencyPair", pair},
		{"rate", rate},
		{"amount", amount},
	}
}

func marginParams(pair string, rate, amount, lendingRate decimal.Decimal) Params {
	if lendingRate.IsZero() {
		lendingRate = decimal.NewFromInt(defaultLendingRate)
	}
	return Params{
		{"currencyPair", pair},
		{"rate", rate},
		{"amount", amount},
		{"lendingRate", lendingRate},
	}
}
