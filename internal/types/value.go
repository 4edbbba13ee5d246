package types

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/wheval/vault/common/check"
)

var (
	Value0   = NewValueFromUint64(0)
	Value100 = NewValueFromUint64(100)
)

// Value is a non-negative 256-bit amount. The zero Value is valid and equal
// to Value0.
type Value struct{ *Uint256 }

func NewValue(val *uint256.Int) Value {
	v := Uint256(*val)
	return Value{&v}
}

func NewValueFromUint64(val uint64) Value {
	return Value{NewUint256(val)}
}

func NewValueFromDecimal(str string) (Value, error) {
	v, err := NewUint256FromDecimal(str)
	if err != nil {
		return Value{}, err
	}
	return Value{v}, nil
}

func NewZeroValue() Value {
	return Value0
}

func NewValueFromBig(val *big.Int) (Value, bool) {
	res, overflow := uint256.FromBig(val)
	if overflow {
		return Value{}, true
	}
	return Value{(*Uint256)(res)}, false
}

func (v Value) IsZero() bool {
	return v.Uint256 == nil || v.Uint256.IsZero()
}

func (v Value) Uint64() uint64 {
	return v.Uint256.safeInt().Uint64()
}

// Add panics on overflow; use AddOverflow when the operands are not known to fit.
func (v Value) Add(other Value) Value {
	res, overflow := v.AddOverflow(other)
	check.PanicIfNot(!overflow)
	return res
}

func (v Value) AddOverflow(other Value) (Value, bool) {
	res, overflow := v.Uint256.addOverflow(other.Uint256)
	return Value{res}, overflow
}

// Sub panics on underflow; use SubOverflow when the operands are not known to fit.
func (v Value) Sub(other Value) Value {
	res, overflow := v.SubOverflow(other)
	check.PanicIfNot(!overflow)
	return res
}

func (v Value) SubOverflow(other Value) (Value, bool) {
	res, overflow := v.Uint256.subOverflow(other.Uint256)
	return Value{res}, overflow
}

func (v Value) Cmp(other Value) int {
	return v.Uint256.cmp(other.Uint256)
}

func (v Value) Eq(other Value) bool {
	return v.Cmp(other) == 0
}

func (v Value) ToBig() *big.Int {
	return v.Uint256.safeInt().ToBig()
}

// The marshaling methods are overridden because encoding does not reach
// through the embedded pointer when it is nil.

func (v *Value) UnmarshalJSON(input []byte) error {
	v.Uint256 = new(Uint256)
	return v.Uint256.UnmarshalJSON(input)
}

func (v *Value) UnmarshalText(input []byte) error {
	v.Uint256 = new(Uint256)
	return v.Uint256.UnmarshalText(input)
}

func (v Value) MarshalJSON() ([]byte, error) {
	return v.Uint256.safeInt().MarshalJSON()
}

func (v Value) MarshalText() ([]byte, error) {
	return v.Uint256.safeInt().MarshalText()
}

func (v *Value) Set(value string) error {
	v.Uint256 = new(Uint256)
	return v.Uint256.Set(value)
}

func (v Value) String() string {
	return v.Uint256.safeInt().String()
}

func (Value) Type() string {
	return "Value"
}
