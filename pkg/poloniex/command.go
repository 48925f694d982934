package poloniex

// Kind tells whether a command needs authentication.
type Kind int

const (
	Unknown Kind = iota
	Public
	Private
)

func (k Kind) String() string {
	switch k {
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}

var publicCommands = []string{
	"returnTicker",
	"return24hVolume",
	"returnOrderBook",
	"returnTradeHistory",
	"returnChartData",
	"returnCurrencies",
	"returnLoanOrders",
}

var privateCommands = []string{
	"returnBalances",
	"returnCompleteBalances",
	"returnDepositAddresses",
	"generateNewAddress",
	"returnDepositsWithdrawals",
	"returnOpenOrders",
	"returnTradeHistory",
	"returnAvailableAccountBalances",
	"returnTradableBalances",
	"returnOpenLoanOffers",
	"returnActiveLoans",
	"createLoanOffer",
	"cancelLoanOffer",
	"toggleAutoRenew",
	"buy",
	"sell",
	"cancelOrder",
	"moveOrder",
	"withdraw",
	"transferBalance",
	"returnMarginAccountSummary",
	"marginBuy",
	"marginSell",
	"getMarginPosition",
	"closeMarginPosition",
}

// commands is built from the tables in precedence order, the first table
// listing an identifier decides its kind.
var commands = func() map[string]Kind {
	tables := []struct {
		kind     Kind
		commands []string
	}{
		{Private, privateCommands},
		{Public, publicCommands},
	}
	m := make(map[string]Kind)
	for _, t := range tables {
		for _, c := range t.commands {
			if _, ok := m[c]; ok {
				continue
			}
			m[c] = t.kind
		}
	}
	return m
}()

// Classify returns the kind of the given command. Commands listed both as
// public and private (returnTradeHistory) are private.
func Classify(command string) Kind {
	return commands[command]
}

// PublicCommands returns the public command table.
func PublicCommands() []string {
	return append([]string(nil), publicCommands...)
}

// PrivateCommands returns the private command table.
func PrivateCommands() []string {
	return append([]string(nil), privateCommands...)
}
