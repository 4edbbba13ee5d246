// Package vault implements a custodial value ledger behind three
// state-mutating entry points: a guarded deposit, a guarded withdrawal that
// commits the ledger before paying out, and an unguarded withdrawal that pays
// out before committing. The last one reproduces the classic reentrancy
// defect on purpose; the two orderings exist to be compared, so neither may
// be "fixed" in terms of the other.
package vault

import (
	"fmt"

	"github.com/wheval/vault/common/logging"
	"github.com/wheval/vault/internal/types"
)

// Vault composes the ledger, the reentrancy guard and the event stream over
// one shared store. All state is owned by the Vault; callers interact with it
// only through the operations below.
type Vault struct {
	ledger *Ledger
	guard  *ReentrancyGuard
	events []types.Event
	sink   EventSink
	logger logging.Logger
}

func New() *Vault {
	return &Vault{
		ledger: NewLedger(),
		guard:  NewReentrancyGuard(),
		logger: logging.NewLogger("vault"),
	}
}

// Deposit credits the calling account with the value attached to the call.
// The guard brackets the whole operation even though deposit performs no
// outbound transfer; every guarded entry point shares the one flag.
func (v *Vault) Deposit(call CallContext) error {
	if err := v.guard.Enter(); err != nil {
		return err
	}
	defer v.guard.Exit()

	caller := call.Caller()
	amount := call.Value()
	if err := v.ledger.Credit(caller, amount); err != nil {
		return err
	}

	v.emit(types.NewDepositEvent(caller, amount))
	return nil
}

// Withdraw debits the calling account and then issues the outbound transfer.
// The debit is durably committed before the transfer runs, so a transfer
// implementation that calls back into the vault finds the guard entered and
// the balance already reduced.
func (v *Vault) Withdraw(call CallContext, amount types.Value) error {
	if err := v.guard.Enter(); err != nil {
		return err
	}
	defer v.guard.Exit()

	caller := call.Caller()
	if err := v.ledger.Debit(caller, amount); err != nil {
		return err
	}
	if err := call.Transfer(caller, amount); err != nil {
		return err
	}

	v.emit(types.NewWithdrawalEvent(caller, amount))
	return nil
}

// UnsafeWithdraw issues the outbound transfer first and commits the debit
// afterwards, and never engages the guard. Between the transfer and the
// commit the recorded balance still holds the pre-withdrawal amount, so a
// transfer implementation that reenters this operation passes the balance
// check again for funds already paid out. Kept exactly so, as the
// counterexample to Withdraw.
func (v *Vault) UnsafeWithdraw(call CallContext, amount types.Value) error {
	caller := call.Caller()
	balance := v.ledger.BalanceOf(caller)
	if balance.Cmp(amount) < 0 {
		return types.NewVerboseError(types.ErrorInsufficientBalance,
			fmt.Sprintf("withdraw %s from %s exceeds balance %s", amount, caller, balance))
	}

	if err := call.Transfer(caller, amount); err != nil {
		return err
	}

	// The committed balance is computed from the read taken before the
	// transfer. A nested call that already debited the same funds gets
	// silently overwritten here.
	v.ledger.setBalance(caller, balance.Sub(amount))
	v.ledger.subTotal(amount)

	v.emit(types.NewWithdrawalEvent(caller, amount))
	return nil
}

// BalanceOf returns the recorded balance of the account.
func (v *Vault) BalanceOf(account types.Address) types.Value {
	return v.ledger.BalanceOf(account)
}

// TotalDeposits returns the aggregate total of outstanding deposits.
func (v *Vault) TotalDeposits() types.Value {
	return v.ledger.TotalDeposits()
}

// IsEntered reports whether a guarded operation is currently in flight.
func (v *Vault) IsEntered() bool {
	return v.guard.IsEntered()
}

// Conserved reports whether the total still equals the sum of all balances.
// It holds after every complete operation unless the unguarded withdrawal has
// been exploited.
func (v *Vault) Conserved() bool {
	return v.ledger.Conserved()
}
