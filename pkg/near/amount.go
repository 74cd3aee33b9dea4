// Package near holds NEAR token amount arithmetic and account-id rules.
//
// Amounts travel through the service as decimal strings. Conversion to and
// from yocto (10^-24 NEAR) is done on integers only.
package near

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const (
	// YoctoDecimals is the number of decimal places between NEAR and yocto.
	YoctoDecimals = 24

	// minDisplayDecimals is the minimum number of fractional digits FormatNEAR emits.
	minDisplayDecimals = 4
)

var (
	decimalRe = regexp.MustCompile(`^\d+(\.\d+)?$`)
	integerRe = regexp.MustCompile(`^\d+$`)

	yoctoPerNEAR = new(big.Int).Exp(big.NewInt(10), big.NewInt(YoctoDecimals), nil)
)

// ParseAmount validates a decimal NEAR amount and returns it unchanged.
// Negative, signed, exponent and empty forms are rejected, as is zero and
// anything with more than 24 fractional digits.
func ParseAmount(amount string) (string, error) {
	amount = strings.TrimSpace(amount)
	if !decimalRe.MatchString(amount) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if i := strings.IndexByte(amount, '.'); i >= 0 && len(amount)-i-1 > YoctoDecimals {
		return "", fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, amount, YoctoDecimals)
	}
	if strings.Trim(strings.ReplaceAll(amount, ".", ""), "0") == "" {
		return "", fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	return amount, nil
}

// ToYocto converts a decimal NEAR amount to its yocto integer string.
func ToYocto(amount string) (string, error) {
	amount, err := ParseAmount(amount)
	if err != nil {
		return "", err
	}

	whole, frac, _ := strings.Cut(amount, ".")
	frac += strings.Repeat("0", YoctoDecimals-len(frac))

	v, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return v.String(), nil
}

// FromYocto converts a yocto integer string to a canonical NEAR decimal with
// at least four fractional digits ("10500000000000000000000000" -> "10.5000").
func FromYocto(yocto string) (string, error) {
	yocto = strings.TrimSpace(yocto)
	if !integerRe.MatchString(yocto) {
		return "", fmt.Errorf("%w: yocto amount %q", ErrInvalidAmount, yocto)
	}
	v, _ := new(big.Int).SetString(yocto, 10)

	whole, rem := new(big.Int).QuoRem(v, yoctoPerNEAR, new(big.Int))
	frac := rem.String()
	frac = strings.Repeat("0", YoctoDecimals-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	if len(frac) < minDisplayDecimals {
		frac += strings.Repeat("0", minDisplayDecimals-len(frac))
	}
	return whole.String() + "." + frac, nil
}

// IsZeroYocto reports whether a yocto string is empty or numerically zero.
func IsZeroYocto(yocto string) bool {
	return strings.Trim(strings.TrimSpace(yocto), "0") == ""
}
