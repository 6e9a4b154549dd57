package bytecursor

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Decimal wire layout: four packed 32-bit words (lo, mid, hi, flags).
// lo/mid/hi form a 96-bit unsigned coefficient; flags carry the scale
// (0..28) in bits 16-23 and the sign in bit 31, all other bits zero.
const (
	maxDecimalScale = 28

	decimalSignBit   uint32 = 1 << 31
	decimalScaleMask uint32 = 0x00FF_0000
)

// DecimalBits packs d into the four-word layout. Positive exponents are
// folded into the coefficient; scales beyond 28 or coefficients wider than
// 96 bits do not fit the layout.
func DecimalBits(d decimal.Decimal) (lo, mid, hi, flags uint32, err error) {
	coeff := new(big.Int).Set(d.Coefficient())
	scale := int32(0)
	if exp := d.Exponent(); exp > 0 {
		coeff.Mul(coeff, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
	} else {
		scale = -exp
	}
	if scale > maxDecimalScale {
		return 0, 0, 0, 0, errors.Wrapf(ErrFormat, "decimal scale %d exceeds %d", scale, maxDecimalScale)
	}
	neg := coeff.Sign() < 0
	if neg {
		coeff.Neg(coeff)
	}
	if coeff.BitLen() > 96 {
		return 0, 0, 0, 0, errors.Wrapf(ErrSizeLimit, "decimal coefficient needs %d bits, layout holds 96", coeff.BitLen())
	}
	var words [12]byte
	coeff.FillBytes(words[:])
	hi = binary.BigEndian.Uint32(words[0:4])
	mid = binary.BigEndian.Uint32(words[4:8])
	lo = binary.BigEndian.Uint32(words[8:12])
	flags = uint32(scale) << 16
	if neg {
		flags |= decimalSignBit
	}
	return lo, mid, hi, flags, nil
}

// DecimalFromBits is the inverse of DecimalBits.
func DecimalFromBits(lo, mid, hi, flags uint32) (decimal.Decimal, error) {
	if flags&^(decimalSignBit|decimalScaleMask) != 0 {
		return decimal.Decimal{}, errors.Wrapf(ErrFormat, "decimal flags %#08x carry unknown bits", flags)
	}
	scale := (flags & decimalScaleMask) >> 16
	if scale > maxDecimalScale {
		return decimal.Decimal{}, errors.Wrapf(ErrFormat, "decimal scale %d exceeds %d", scale, maxDecimalScale)
	}
	var words [12]byte
	binary.BigEndian.PutUint32(words[0:4], hi)
	binary.BigEndian.PutUint32(words[4:8], mid)
	binary.BigEndian.PutUint32(words[8:12], lo)
	coeff := new(big.Int).SetBytes(words[:])
	if flags&decimalSignBit != 0 {
		coeff.Neg(coeff)
	}
	return decimal.NewFromBigInt(coeff, -int32(scale)), nil
}

// ToDecimal decodes the 16-byte four-word layout, words in host order.
func ToDecimal(buf []byte, pos *int) (decimal.Decimal, error) {
	return ExecuteConversion(buf, pos, 16, func(b []byte) (decimal.Decimal, error) {
		return DecimalFromBits(
			binary.NativeEndian.Uint32(b[0:4]),
			binary.NativeEndian.Uint32(b[4:8]),
			binary.NativeEndian.Uint32(b[8:12]),
			binary.NativeEndian.Uint32(b[12:16]),
		)
	})
}

func ToDecimalOrDefault(buf []byte, pos *int, def decimal.Decimal, obs ...Observer) decimal.Decimal {
	v, err := ToDecimal(buf, pos)
	return orDefault(v, err, def, obs)
}
