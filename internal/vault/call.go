package vault

import (
	"github.com/wheval/vault/internal/types"
)

// CallContext supplies, for the call currently executing, the calling account
// and the value attached to the call, plus the outbound transfer primitive.
//
// Transfer is opaque code: it may synchronously call back into the vault
// before the current operation returns. Implementations must not be assumed
// benign.
type CallContext interface {
	Caller() types.Address
	Value() types.Value
	Transfer(to types.Address, amount types.Value) error
}

// Transfer records one outbound value transfer.
type Transfer struct {
	To     types.Address
	Amount types.Value
}

// DirectCall is a CallContext with a fixed caller and attached value. Every
// outbound transfer is recorded and, if set, forwarded to OnTransfer, which
// is free to reenter the vault.
type DirectCall struct {
	From     types.Address
	Attached types.Value

	OnTransfer func(to types.Address, amount types.Value) error

	// Transfers collects every transfer issued through this context, in order.
	Transfers []Transfer
}

var _ CallContext = (*DirectCall)(nil)

func (c *DirectCall) Caller() types.Address {
	return c.From
}

func (c *DirectCall) Value() types.Value {
	if c.Attached.IsZero() {
		return types.NewZeroValue()
	}
	return c.Attached
}

func (c *DirectCall) Transfer(to types.Address, amount types.Value) error {
	c.Transfers = append(c.Transfers, Transfer{To: to, Amount: amount})
	if c.OnTransfer != nil {
		return c.OnTransfer(to, amount)
	}
	return nil
}
