package types

// EventKind discriminates the observable notifications the vault emits.
type EventKind uint8

const (
	EventDeposit EventKind = iota + 1
	EventWithdrawal
)

func (k EventKind) String() string {
	switch k {
	case EventDeposit:
		return "Deposit"
	case EventWithdrawal:
		return "Withdrawal"
	}
	return "Unknown"
}

// Event is a fire-and-forget notification of a successful operation. Events
// carry no acknowledgment and have no effect on control flow.
type Event struct {
	Kind    EventKind `json:"kind"`
	Account Address   `json:"account"`
	Amount  Value     `json:"amount"`
}

func NewDepositEvent(account Address, amount Value) Event {
	return Event{Kind: EventDeposit, Account: account, Amount: amount}
}

func NewWithdrawalEvent(account Address, amount Value) Event {
	return Event{Kind: EventWithdrawal, Account: account, Amount: amount}
}
