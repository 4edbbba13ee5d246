package vault

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wheval/vault/internal/types"
)

type SuiteVault struct {
	suite.Suite

	vault *Vault
	user  types.Address
}

func (s *SuiteVault) SetupTest() {
	s.vault = New()
	s.user = types.GenerateRandomAddress()
}

func (s *SuiteVault) deposit(amount uint64) *DirectCall {
	call := &DirectCall{From: s.user, Attached: types.NewValueFromUint64(amount)}
	s.Require().NoError(s.vault.Deposit(call))
	return call
}

func (s *SuiteVault) TestDepositWithdrawScenario() {
	s.Require().False(s.vault.IsEntered())
	s.Require().True(s.vault.TotalDeposits().IsZero())

	s.Run("Deposit", func() {
		s.deposit(100)
		s.Equal(uint64(100), s.vault.BalanceOf(s.user).Uint64())
		s.Equal(uint64(100), s.vault.TotalDeposits().Uint64())
		s.False(s.vault.IsEntered())
	})

	var call *DirectCall

	s.Run("Withdraw", func() {
		call = &DirectCall{From: s.user}
		s.Require().NoError(s.vault.Withdraw(call, types.NewValueFromUint64(40)))
		s.Equal(uint64(60), s.vault.BalanceOf(s.user).Uint64())
		s.Equal(uint64(60), s.vault.TotalDeposits().Uint64())
		s.Require().Len(call.Transfers, 1)
		s.Equal(s.user, call.Transfers[0].To)
		s.Equal(uint64(40), call.Transfers[0].Amount.Uint64())
		s.False(s.vault.IsEntered())
	})

	s.Run("Overdraw", func() {
		err := s.vault.Withdraw(call, types.NewValueFromUint64(1000))
		s.Require().Error(err)
		s.Equal(types.ErrorInsufficientBalance, types.GetErrorCode(err))
		s.Equal(uint64(60), s.vault.BalanceOf(s.user).Uint64())
		s.Equal(uint64(60), s.vault.TotalDeposits().Uint64())
		s.Len(call.Transfers, 1) // no new transfer
		s.False(s.vault.IsEntered())
	})

	s.Run("Events", func() {
		events := s.vault.Events()
		s.Require().Len(events, 2)
		s.Equal(types.EventDeposit, events[0].Kind)
		s.Equal(s.user, events[0].Account)
		s.Equal(uint64(100), events[0].Amount.Uint64())
		s.Equal(types.EventWithdrawal, events[1].Kind)
		s.Equal(uint64(40), events[1].Amount.Uint64())
	})

	s.True(s.vault.Conserved())
}

func (s *SuiteVault) TestWithdrawBlocksReentry() {
	s.deposit(100)

	var innerWithdrawErr, innerDepositErr error
	call := &DirectCall{From: s.user, Attached: types.NewValueFromUint64(10)}
	call.OnTransfer = func(to types.Address, amount types.Value) error {
		// The guard is still engaged here; both nested entries must be rejected.
		s.True(s.vault.IsEntered())
		innerWithdrawErr = s.vault.Withdraw(call, amount)
		innerDepositErr = s.vault.Deposit(call)
		return nil
	}

	s.Require().NoError(s.vault.Withdraw(call, types.NewValueFromUint64(40)))

	s.Equal(types.ErrorReentrantCall, types.GetErrorCode(innerWithdrawErr))
	s.Equal(types.ErrorReentrantCall, types.GetErrorCode(innerDepositErr))

	// One debit, one transfer, untouched by the failed nested calls.
	s.Equal(uint64(60), s.vault.BalanceOf(s.user).Uint64())
	s.Equal(uint64(60), s.vault.TotalDeposits().Uint64())
	s.Len(call.Transfers, 1)
	s.False(s.vault.IsEntered())
	s.True(s.vault.Conserved())

	// Only the outer withdrawal shows up in the events.
	events := s.vault.Events()
	s.Require().Len(events, 2)
	s.Equal(types.EventWithdrawal, events[1].Kind)
}

func (s *SuiteVault) TestWithdrawDebitPrecedesTransfer() {
	s.deposit(100)

	call := &DirectCall{From: s.user}
	call.OnTransfer = func(to types.Address, amount types.Value) error {
		// Effects before interactions: the debit is already committed.
		s.Equal(uint64(60), s.vault.BalanceOf(s.user).Uint64())
		s.Equal(uint64(60), s.vault.TotalDeposits().Uint64())
		return nil
	}

	s.Require().NoError(s.vault.Withdraw(call, types.NewValueFromUint64(40)))
}

func (s *SuiteVault) TestWithdrawTransferFailureReleasesGuard() {
	s.deposit(100)

	transferErr := errors.New("recipient rejected the transfer")
	call := &DirectCall{From: s.user, OnTransfer: func(types.Address, types.Value) error {
		return transferErr
	}}

	err := s.vault.Withdraw(call, types.NewValueFromUint64(40))
	s.Require().ErrorIs(err, transferErr)

	// The debit was committed before the transfer ran; the guard is released
	// and no withdrawal event was emitted.
	s.Equal(uint64(60), s.vault.BalanceOf(s.user).Uint64())
	s.False(s.vault.IsEntered())
	s.Require().Len(s.vault.Events(), 1)
	s.Equal(types.EventDeposit, s.vault.Events()[0].Kind)
}

func (s *SuiteVault) TestUnsafeWithdrawReentrancy() {
	s.Run("DoubleSpend", func() {
		s.SetupTest()
		s.deposit(100)

		var innerErr error
		reentered := false
		call := &DirectCall{From: s.user}
		call.OnTransfer = func(to types.Address, amount types.Value) error {
			// The unguarded path never engages the guard, and the recorded
			// balance still holds the pre-withdrawal amount here.
			s.False(s.vault.IsEntered())
			s.Equal(uint64(100), s.vault.BalanceOf(s.user).Uint64())
			if !reentered {
				reentered = true
				innerErr = s.vault.UnsafeWithdraw(call, amount)
			}
			return nil
		}

		s.Require().NoError(s.vault.UnsafeWithdraw(call, types.NewValueFromUint64(40)))
		s.Require().NoError(innerErr)

		// Two transfers of 40 went out, but the ledger shows a single debit.
		s.Require().Len(call.Transfers, 2)
		s.Equal(uint64(40), call.Transfers[0].Amount.Uint64())
		s.Equal(uint64(40), call.Transfers[1].Amount.Uint64())
		s.Equal(uint64(60), s.vault.BalanceOf(s.user).Uint64())
		s.Equal(uint64(20), s.vault.TotalDeposits().Uint64())
		s.False(s.vault.Conserved())
		s.Len(s.vault.Events(), 3) // deposit + both withdrawals
	})

	s.Run("FullDrain", func() {
		s.SetupTest()
		s.deposit(100)

		depth := 0
		call := &DirectCall{From: s.user}
		call.OnTransfer = func(to types.Address, amount types.Value) error {
			if depth < 2 {
				depth++
				s.Require().NoError(s.vault.UnsafeWithdraw(call, amount))
			}
			return nil
		}

		s.Require().NoError(s.vault.UnsafeWithdraw(call, types.NewValueFromUint64(100)))

		// Three transfers of the full balance against a single recorded debit.
		s.Require().Len(call.Transfers, 3)
		s.True(s.vault.BalanceOf(s.user).IsZero())
		s.True(s.vault.TotalDeposits().IsZero())
	})
}

func (s *SuiteVault) TestUnsafeWithdrawInsufficientBalance() {
	s.deposit(60)

	call := &DirectCall{From: s.user}
	err := s.vault.UnsafeWithdraw(call, types.NewValueFromUint64(1000))
	s.Require().Error(err)
	s.Equal(types.ErrorInsufficientBalance, types.GetErrorCode(err))

	// The check failed before the transfer, so nothing went out.
	s.Empty(call.Transfers)
	s.Equal(uint64(60), s.vault.BalanceOf(s.user).Uint64())
	s.True(s.vault.Conserved())
}

func (s *SuiteVault) TestGuardNeverLeaks() {
	maxValue, err := types.NewValueFromDecimal(maxUint256Decimal)
	s.Require().NoError(err)

	s.Require().NoError(s.vault.Deposit(&DirectCall{From: s.user, Attached: maxValue}))
	s.False(s.vault.IsEntered())

	// A deposit failing inside the ledger still releases the guard.
	err = s.vault.Deposit(&DirectCall{From: s.user, Attached: types.NewValueFromUint64(1)})
	s.Equal(types.ErrorArithmeticOverflow, types.GetErrorCode(err))
	s.False(s.vault.IsEntered())

	// Same for a withdrawal failing the balance check.
	other := types.GenerateRandomAddress()
	err = s.vault.Withdraw(&DirectCall{From: other}, types.NewValueFromUint64(1))
	s.Equal(types.ErrorInsufficientBalance, types.GetErrorCode(err))
	s.False(s.vault.IsEntered())
}

func (s *SuiteVault) TestZeroValueDeposit() {
	call := &DirectCall{From: s.user}
	s.Require().NoError(s.vault.Deposit(call))
	s.True(s.vault.BalanceOf(s.user).IsZero())
	s.True(s.vault.TotalDeposits().IsZero())
	s.Require().Len(s.vault.Events(), 1)
	s.True(s.vault.Events()[0].Amount.IsZero())
}

func (s *SuiteVault) TestEventSink() {
	var seen []types.Event
	s.vault.SubscribeEvents(func(e types.Event) {
		seen = append(seen, e)
	})

	s.deposit(100)
	s.Require().NoError(s.vault.Withdraw(&DirectCall{From: s.user}, types.NewValueFromUint64(40)))

	s.Require().Len(seen, 2)
	s.Equal(types.EventDeposit, seen[0].Kind)
	s.Equal(types.EventWithdrawal, seen[1].Kind)
	s.Equal(seen, s.vault.Events())
}

func TestSuiteVault(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(SuiteVault))
}
