package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wheval/vault/common/check"
	"github.com/wheval/vault/common/logging"
	"github.com/wheval/vault/internal/types"
	"github.com/wheval/vault/internal/vault"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "vault [global flags] [command]",
		Short:         "custodial vault ledger demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP(
		"log-level",
		"l",
		"info",
		"log level: trace|debug|info|warn|error|fatal|panic")
	rootCmd.PersistentFlags().Uint64("deposit", 100, "amount deposited before the run")

	viper.SetEnvPrefix("vault")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	check.PanicIfErr(viper.BindPFlags(rootCmd.PersistentFlags()))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.SetupGlobalLogger(viper.GetString("log-level"))
		logging.ApplyComponentsFilterEnv()
	}

	rootCmd.AddCommand(scenarioCmd(), attackCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("vault failed: %s\n", err.Error())
		os.Exit(1)
	}
}

func scenarioCmd() *cobra.Command {
	var withdrawAmount uint64

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Deposit, withdraw through the guarded path, then overdraw",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(viper.GetUint64("deposit"), withdrawAmount)
		},
	}
	cmd.Flags().Uint64Var(&withdrawAmount, "withdraw", 40, "amount to withdraw")
	return cmd
}

func attackCmd() *cobra.Command {
	var rounds int

	cmd := &cobra.Command{
		Use:   "attack",
		Short: "Drain the vault through the unguarded withdrawal path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttack(viper.GetUint64("deposit"), rounds)
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 2, "number of reentrant calls made by the transfer hook")
	return cmd
}

func runScenario(depositAmount, withdrawAmount uint64) error {
	logger := logging.NewLogger("scenario")
	v := vault.New()
	v.SubscribeEvents(func(e types.Event) {
		logger.Info().
			Stringer(logging.FieldEventKind, e.Kind).
			Stringer(logging.FieldAccount, e.Account).
			Stringer(logging.FieldAmount, e.Amount).
			Msg("event")
	})

	user := types.GenerateRandomAddress()

	call := &vault.DirectCall{From: user, Attached: types.NewValueFromUint64(depositAmount)}
	if err := v.Deposit(call); err != nil {
		return err
	}
	if err := v.Withdraw(call, types.NewValueFromUint64(withdrawAmount)); err != nil {
		return err
	}

	// An overdraw must fail and leave the state untouched.
	overdraw := v.TotalDeposits().Add(types.NewValueFromUint64(1))
	err := v.Withdraw(call, overdraw)
	logger.Info().
		Str(logging.FieldErrorCode, types.GetErrorCode(err).String()).
		Msgf("overdraw of %s rejected", overdraw)

	logger.Info().
		Stringer(logging.FieldBalance, v.BalanceOf(user)).
		Stringer(logging.FieldTotal, v.TotalDeposits()).
		Bool("conserved", v.Conserved()).
		Msgf("scenario finished, %d transfers issued", len(call.Transfers))
	return nil
}

func runAttack(depositAmount uint64, rounds int) error {
	logger := logging.NewLogger("attack")
	v := vault.New()

	attacker := types.GenerateRandomAddress()
	amount := types.NewValueFromUint64(depositAmount)

	depositCall := &vault.DirectCall{From: attacker, Attached: amount}
	if err := v.Deposit(depositCall); err != nil {
		return err
	}

	drained := types.NewZeroValue()
	depth := 0
	call := &vault.DirectCall{From: attacker}
	call.OnTransfer = func(to types.Address, transferred types.Value) error {
		drained = drained.Add(transferred)
		if depth < rounds {
			depth++
			// The recorded balance has not been debited yet, so the balance
			// check passes again for the funds just paid out.
			return v.UnsafeWithdraw(call, transferred)
		}
		return nil
	}

	if err := v.UnsafeWithdraw(call, amount); err != nil {
		return err
	}

	logger.Info().
		Stringer(logging.FieldBalance, v.BalanceOf(attacker)).
		Stringer(logging.FieldTotal, v.TotalDeposits()).
		Stringer(logging.FieldAmount, drained).
		Bool("conserved", v.Conserved()).
		Msgf("drained %s from a vault holding %s", drained, amount)
	return nil
}
