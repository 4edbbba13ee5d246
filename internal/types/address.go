package types

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// AddrSize is the expected length of an address in bytes.
const AddrSize = 20

// Address identifies an account in the vault. It has the shape of a 20-byte
// Ethereum-style address but carries no on-chain meaning here.
type Address [AddrSize]byte

var EmptyAddress = Address{}

// BytesToAddress returns Address with value b.
// If b is larger than len(a), b will be cropped from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress returns Address with byte values of s.
// If s is larger than len(a), s will be cropped from the left.
func HexToAddress(s string) Address {
	if has0xPrefix(s) {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}
	}

	return BytesToAddress(b)
}

// IsHexAddress verifies whether a string can represent a valid hex-encoded
// address or not.
func IsHexAddress(s string) bool {
	if has0xPrefix(s) {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	return err == nil && len(b) == AddrSize
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Bytes gets the byte representation of the underlying address.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns a 0x-prefixed hex string representation of the address.
func (a Address) Hex() string {
	return string(a.hex())
}

func (a Address) Equal(b Address) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

func (a Address) IsEmpty() bool {
	return a.Equal(EmptyAddress)
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Hex()
}

func (a Address) hex() []byte {
	var buf [len(a)*2 + 2]byte
	copy(buf[:2], "0x")
	hex.Encode(buf[2:], a[:])
	return buf[:]
}

// Format implements fmt.Formatter.
// Address supports the %v, %s, %q, %x, %X and %d format verbs.
func (a Address) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		_, _ = s.Write(a.hex())
	case 'q':
		q := []byte{'"'}
		_, _ = s.Write(q)
		_, _ = s.Write(a.hex())
		_, _ = s.Write(q)
	case 'x', 'X':
		h := a.hex()
		if !s.Flag('#') {
			h = h[2:]
		}
		if c == 'X' {
			h = bytes.ToUpper(h)
		}
		_, _ = s.Write(h)
	case 'd':
		fmt.Fprint(s, ([len(a)]byte)(a))
	default:
		fmt.Fprintf(s, "%%!%c(address=%x)", c, a)
	}
}

// SetBytes sets the address to the value of b.
// If b is larger than len(a), b will be cropped from the left.
func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddrSize:]
	}
	copy(a[AddrSize-len(b):], b)
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return a.hex(), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	s := string(input)
	if has0xPrefix(s) {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid hex address %q: %w", input, err)
	}
	if len(b) != AddrSize {
		return fmt.Errorf("invalid address length %d, want %d", len(b), AddrSize)
	}
	copy(a[:], b)
	return nil
}

func (a *Address) Set(val string) error {
	return a.UnmarshalText([]byte(val))
}

func (a *Address) Type() string {
	return "Address"
}

func GenerateRandomAddress() Address {
	var a Address
	_, err := rand.Read(a[:])
	if err != nil {
		panic(err)
	}
	return a
}
