package poloniex

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Ticker struct {
	ID            int             `json:"id"`
	Last          decimal.Decimal `json:"last"`
	LowestAsk     decimal.Decimal `json:"lowestAsk"`
	HighestBid    decimal.Decimal `json:"highestBid"`
	PercentChange decimal.Decimal `json:"percentChange"`
	BaseVolume    decimal.Decimal `json:"baseVolume"`
	QuoteVolume   decimal.Decimal `json:"quoteVolume"`
	IsFrozen      string          `json:"isFrozen"`
	High24h       decimal.Decimal `json:"high24hr"`
	Low24h        decimal.Decimal `json:"low24hr"`
}

// Frozen reports whether trading is halted on the market.
func (t Ticker) Frozen() bool {
	return t.IsFrozen == "1"
}

// Level is an order book entry: price (sent as a string) and amount (sent
// as a number).
type Level [2]decimal.Decimal

func (l Level) Price() decimal.Decimal  { return l[0] }
func (l Level) Amount() decimal.Decimal { return l[1] }

type OrderBook struct {
	Asks     []Level     `json:"asks"`
	Bids     []Level     `json:"bids"`
	IsFrozen string      `json:"isFrozen"`
	Seq      json.Number `json:"seq"`
}

type ChartCandle struct {
	Date            int64           `json:"date"`
	High            decimal.Decimal `json:"high"`
	Low             decimal.Decimal `json:"low"`
	Open            decimal.Decimal `json:"open"`
	Close           decimal.Decimal `json:"close"`
	Volume          decimal.Decimal `json:"volume"`
	QuoteVolume     decimal.Decimal `json:"quoteVolume"`
	WeightedAverage decimal.Decimal `json:"weightedAverage"`
}

// Time returns the candle start time in UTC.
func (c ChartCandle) Time() time.Time {
	return time.Unix(c.Date, 0).UTC()
}

// Balances maps currencies to available amounts.
type Balances map[string]decimal.Decimal

type CompleteBalance struct {
	Available decimal.Decimal `json:"available"`
	OnOrders  decimal.Decimal `json:"onOrders"`
	BTCValue  decimal.Decimal `json:"btcValue"`
}

type ResultingTrade struct {
	Amount  decimal.Decimal `json:"amount"`
	Date    string          `json:"date"`
	Rate    decimal.Decimal `json:"rate"`
	Total   decimal.Decimal `json:"total"`
	TradeID json.Number     `json:"tradeID"`
	Type    string          `json:"type"`
}

type OrderResult struct {
	OrderNumber     json.Number      `json:"orderNumber"`
	ResultingTrades []ResultingTrade `json:"resultingTrades"`
}
