package types

import (
	"encoding"
	"encoding/json"
	"math/big"

	"github.com/holiman/uint256"
)

// interfaces
var (
	_ json.Marshaler           = (*Uint256)(nil)
	_ json.Unmarshaler         = (*Uint256)(nil)
	_ encoding.TextMarshaler   = (*Uint256)(nil)
	_ encoding.TextUnmarshaler = (*Uint256)(nil)
)

type Uint256 uint256.Int

func NewUint256(val uint64) *Uint256 {
	return (*Uint256)(uint256.NewInt(val))
}

func NewUint256FromBytes(buf []byte) *Uint256 {
	return (*Uint256)(new(uint256.Int).SetBytes(buf))
}

func NewUint256FromDecimal(str string) (*Uint256, error) {
	v := new(uint256.Int)
	if err := v.SetFromDecimal(str); err != nil {
		return nil, err
	}
	return (*Uint256)(v), nil
}

func CastToUint256(val *uint256.Int) *Uint256 {
	return (*Uint256)(val)
}

// Int returns a copy of the underlying integer.
func (u *Uint256) Int() *uint256.Int {
	v := *u.safeInt()
	return &v
}

func (u *Uint256) safeInt() *uint256.Int {
	if u == nil {
		return &uint256.Int{}
	}
	return (*uint256.Int)(u)
}

func (u *Uint256) ToBig() *big.Int {
	return u.safeInt().ToBig()
}

func (u Uint256) MarshalJSON() ([]byte, error) {
	return u.safeInt().MarshalJSON()
}

func (u *Uint256) UnmarshalJSON(input []byte) error {
	return (*uint256.Int)(u).UnmarshalJSON(input)
}

func (u Uint256) MarshalText() ([]byte, error) {
	return u.safeInt().MarshalText()
}

func (u *Uint256) UnmarshalText(input []byte) error {
	return (*uint256.Int)(u).UnmarshalText(input)
}

func (u Uint256) String() string {
	return u.safeInt().String()
}

func (u *Uint256) Set(value string) error {
	return (*uint256.Int)(u).SetFromDecimal(value)
}

func (u *Uint256) Uint64() uint64 {
	return u.safeInt().Uint64()
}

func (u *Uint256) IsUint64() bool {
	return u.safeInt().IsUint64()
}

func (u *Uint256) IsZero() bool {
	return u.safeInt().IsZero()
}

func (*Uint256) Type() string {
	return "Uint256"
}

func (u *Uint256) addOverflow(other *Uint256) (*Uint256, bool) {
	res, overflow := uint256.NewInt(0).AddOverflow(u.safeInt(), other.safeInt())
	return (*Uint256)(res), overflow
}

func (u *Uint256) subOverflow(other *Uint256) (*Uint256, bool) {
	res, overflow := uint256.NewInt(0).SubOverflow(u.safeInt(), other.safeInt())
	return (*Uint256)(res), overflow
}

func (u *Uint256) cmp(other *Uint256) int {
	return u.safeInt().Cmp(other.safeInt())
}
