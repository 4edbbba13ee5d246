package vault

import (
	"fmt"

	"github.com/wheval/vault/common/check"
	"github.com/wheval/vault/common/logging"
	"github.com/wheval/vault/internal/types"
)

var logger = logging.NewLogger("ledger")

// Ledger owns the per-account balances and the aggregate total of all
// outstanding deposits. Outside of an in-flight operation the total always
// equals the sum of the balances; Credit and Debit mutate both in lock-step.
type Ledger struct {
	balances map[types.Address]types.Value
	total    types.Value
}

func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[types.Address]types.Value),
		total:    types.NewZeroValue(),
	}
}

// BalanceOf returns the recorded balance of the account, zero for an account
// never credited.
func (l *Ledger) BalanceOf(account types.Address) types.Value {
	if balance, ok := l.balances[account]; ok {
		return balance
	}
	return types.NewZeroValue()
}

// TotalDeposits returns the aggregate total of all outstanding balances.
func (l *Ledger) TotalDeposits() types.Value {
	return l.total
}

// Credit adds amount to the account's balance and to the total. It fails with
// ArithmeticOverflow if either sum leaves the 256-bit domain, in which case
// nothing is mutated.
func (l *Ledger) Credit(account types.Address, amount types.Value) error {
	balance := l.BalanceOf(account)
	newBalance, overflow := balance.AddOverflow(amount)
	if overflow {
		return types.NewVerboseError(types.ErrorArithmeticOverflow,
			fmt.Sprintf("credit %s to %s overflows balance %s", amount, account, balance))
	}
	newTotal, overflow := l.total.AddOverflow(amount)
	if overflow {
		return types.NewVerboseError(types.ErrorArithmeticOverflow,
			fmt.Sprintf("credit %s overflows total %s", amount, l.total))
	}

	logger.Debug().Stringer(logging.FieldAccount, account).
		Msgf("balance change: %s + %s = %s", balance, amount, newBalance)
	l.balances[account] = newBalance
	l.total = newTotal
	return nil
}

// Debit removes amount from the account's balance and from the total. It
// fails with InsufficientBalance if the recorded balance is too low, in which
// case nothing is mutated.
func (l *Ledger) Debit(account types.Address, amount types.Value) error {
	balance := l.BalanceOf(account)
	if balance.Cmp(amount) < 0 {
		return types.NewVerboseError(types.ErrorInsufficientBalance,
			fmt.Sprintf("debit %s from %s exceeds balance %s", amount, account, balance))
	}
	newTotal, underflow := l.total.SubOverflow(amount)
	// The total covers every balance whenever conservation holds, so an
	// underflow here means the store is corrupted.
	check.PanicIfNotf(!underflow, "total %s underflows by debit of %s", l.total, amount)

	newBalance := balance.Sub(amount)
	logger.Debug().Stringer(logging.FieldAccount, account).
		Msgf("balance change: %s - %s = %s", balance, amount, newBalance)
	l.balances[account] = newBalance
	l.total = newTotal
	return nil
}

// setBalance overwrites the account's balance without touching the total.
// Only the unguarded withdrawal path uses it, to commit a balance computed
// from a read taken before the outbound transfer.
func (l *Ledger) setBalance(account types.Address, balance types.Value) {
	logger.Debug().Stringer(logging.FieldAccount, account).
		Msgf("balance overwrite: %s -> %s", l.BalanceOf(account), balance)
	l.balances[account] = balance
}

// subTotal reduces the total from its current value, saturating at zero.
// Only the unguarded withdrawal path uses it; under reentrant nesting the
// total legitimately diverges from the sum of balances there.
func (l *Ledger) subTotal(amount types.Value) {
	newTotal, underflow := l.total.SubOverflow(amount)
	if underflow {
		newTotal = types.NewZeroValue()
	}
	l.total = newTotal
}

// Conserved reports whether the total equals the sum of all balances.
func (l *Ledger) Conserved() bool {
	return l.total.Eq(l.balancesSum())
}

func (l *Ledger) balancesSum() types.Value {
	sum := types.NewZeroValue()
	for _, balance := range l.balances {
		sum = sum.Add(balance)
	}
	return sum
}
