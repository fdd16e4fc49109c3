package ast

import (
	"fmt"
	"math/big"
	"strconv"
)

// Integer is an arbitrary-precision integer with a small-int fast path: most
// arithmetic in a typical program never leaves the int32 range, so Integer
// only promotes to a *big.Int once an operation actually overflows.
type Integer struct {
	small   int32
	large   *big.Int // non-nil iff the value is represented as Large
	isLarge bool
}

// SmallInteger constructs a small-representation Integer.
func SmallInteger(value int32) Integer {
	return Integer{small: value}
}

// LargeInteger constructs a large-representation Integer from a *big.Int,
// demoting back to Small if the value actually fits.
func LargeInteger(value *big.Int) Integer {
	if value.IsInt64() {
		if v := value.Int64(); v >= minSmall && v <= maxSmall {
			return SmallInteger(int32(v))
		}
	}
	return Integer{large: new(big.Int).Set(value), isLarge: true}
}

const (
	minSmall = int64(-1) << 31
	maxSmall = int64(1)<<31 - 1
)

// IntegerFromInt64 constructs an Integer from an int64, choosing Small when
// the value fits and Large otherwise.
func IntegerFromInt64(value int64) Integer {
	if value >= minSmall && value <= maxSmall {
		return SmallInteger(int32(value))
	}
	return LargeInteger(big.NewInt(value))
}

// ParseInteger parses a decimal string (optionally signed), trying the
// Small representation first and falling back to Large.
func ParseInteger(s string) (Integer, error) {
	if small, err := strconv.ParseInt(s, 10, 32); err == nil {
		return SmallInteger(int32(small)), nil
	}
	large, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, fmt.Errorf("ast: invalid integer literal %q", s)
	}
	return LargeInteger(large), nil
}

// IsLarge reports whether the value is currently represented as a Large
// big integer. This is a representation detail, not part of value equality.
func (i Integer) IsLarge() bool { return i.isLarge }

func (i Integer) big() *big.Int {
	if i.isLarge {
		return i.large
	}
	return big.NewInt(int64(i.small))
}

// String renders the decimal value, independent of representation.
func (i Integer) String() string {
	if i.isLarge {
		return i.large.String()
	}
	return fmt.Sprintf("%d", i.small)
}

// Equal compares numeric value, ignoring representation: a Small and a
// Large holding the same value are equal.
func (i Integer) Equal(other Integer) bool {
	if !i.isLarge && !other.isLarge {
		return i.small == other.small
	}
	return i.big().Cmp(other.big()) == 0
}

// Add returns i + other, promoting to Large on int32 overflow and demoting
// back to Small when the Large result fits after all.
func (i Integer) Add(other Integer) Integer {
	if !i.isLarge && !other.isLarge {
		sum := int64(i.small) + int64(other.small)
		if sum >= minSmall && sum <= maxSmall {
			return SmallInteger(int32(sum))
		}
	}
	return LargeInteger(new(big.Int).Add(i.big(), other.big()))
}

// Subtract returns i - other, with the same overflow-promotion behaviour as
// Add.
func (i Integer) Subtract(other Integer) Integer {
	if !i.isLarge && !other.isLarge {
		diff := int64(i.small) - int64(other.small)
		if diff >= minSmall && diff <= maxSmall {
			return SmallInteger(int32(diff))
		}
	}
	return LargeInteger(new(big.Int).Sub(i.big(), other.big()))
}

// Multiply returns i * other, with the same overflow-promotion behaviour as
// Add.
func (i Integer) Multiply(other Integer) Integer {
	if !i.isLarge && !other.isLarge {
		product := int64(i.small) * int64(other.small)
		if int64(int32(product)) == product {
			return SmallInteger(int32(product))
		}
	}
	return LargeInteger(new(big.Int).Mul(i.big(), other.big()))
}
