package evenbinary

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidArgument is returned for negative numbers, malformed digit sequences
// and out of range generator parameters.
var ErrInvalidArgument = errors.New("evenbinary: invalid argument")

// ErrWidthOverflow is returned by a strict Generator when a value needs more digits
// than the padding width.
var ErrWidthOverflow = errors.New("evenbinary: value wider than padding width")

// IntToBin converts a non-negative number into its binary digits, most significant first.
// Zero is the single digit 0.
func IntToBin(number int) ([]int, error) {
	if number < 0 {
		return nil, fmt.Errorf("%w: only non-negative integers are allowed, got %d", ErrInvalidArgument, number)
	}
	if number == 0 {
		return []int{0}, nil
	}
	var n = bits.Len(uint(number))
	var out = make([]int, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = number & 1
		number >>= 1
	}
	return out, nil
}

// BinToInt decodes binary digits, most significant first. Leading zeros are allowed.
func BinToInt(digits []int) (int, error) {
	if len(digits) == 0 {
		return 0, fmt.Errorf("%w: empty digit sequence", ErrInvalidArgument)
	}
	var out uint
	for i, d := range digits {
		if d != 0 && d != 1 {
			return 0, fmt.Errorf("%w: digit %d at position %d", ErrInvalidArgument, d, i)
		}
		if out > (^uint(0)>>1)>>1 {
			return 0, fmt.Errorf("%w: %d digits overflow int", ErrInvalidArgument, len(digits))
		}
		out = out<<1 | uint(d)
	}
	return int(out), nil
}

// pad left pads digits with zeros up to width. Wider sequences are returned as is.
func pad(digits []int, width int) []int {
	if len(digits) >= width {
		return digits
	}
	var out = make([]int, width)
	copy(out[width-len(digits):], digits)
	return out
}
