package evenbinary

import (
	"fmt"
	"math"

	"github.com/neurlang/evenbinary/datasets"
	"github.com/neurlang/quaternary"
)

type Sample uint32

func (s Sample) Feature(_ int) uint32 {
	return uint32(s)
}

func (s Sample) Parity() uint16 {
	// don't balance
	return 0
}

func (s Sample) Output() uint16 {
	if s&1 == 0 {
		return 1
	}
	return 0
}

// Samples returns the batch values as classifier samples. Values above math.MaxUint32
// have no sample and fail with ErrInvalidArgument.
func (b *Batch) Samples() ([]Sample, error) {
	values, err := b.Values()
	if err != nil {
		return nil, err
	}
	var ret = make([]Sample, len(values))
	for i, v := range values {
		if uint64(v) > math.MaxUint32 {
			return nil, fmt.Errorf("%w: sample %d value %d does not fit a uint32 feature", ErrInvalidArgument, i, v)
		}
		ret[i] = Sample(v)
	}
	return ret, nil
}

// Set materializes the batch, taking only feature 0 into account
func (b *Batch) Set() (set datasets.Dataset, err error) {
	samples, err := b.Samples()
	if err != nil {
		return nil, err
	}
	set.Init()
	for _, s := range samples {
		set[s.Feature(0)] = s.Output()^s.Parity() != 0
	}
	return set, nil
}

// Balanced materializes the batch and adds odd negatives below MaxInt until both
// labels are equally represented. draw(n) should return a number in [0, n); once it
// has been called a few times per sample, or when it returns something out of range,
// the remaining negatives are taken in ascending order instead.
//
// Every value must be an even number below MaxInt, and MaxInt must leave at least as
// many odd numbers as there are distinct values.
func (b *Batch) Balanced(draw func(n int) int) (datasets.Dataset, error) {
	if _, err := checkBound(b.MaxInt); err != nil {
		return nil, err
	}
	if uint64(b.MaxInt) > 1<<32 {
		return nil, fmt.Errorf("%w: max int %d leaves negatives outside uint32", ErrInvalidArgument, b.MaxInt)
	}
	set, err := b.Set()
	if err != nil {
		return nil, err
	}
	var odd = b.MaxInt / 2
	for k, v := range set {
		if !v || uint64(k) >= uint64(b.MaxInt) {
			return nil, fmt.Errorf("%w: %d is not an even number below %d", ErrInvalidArgument, k, b.MaxInt)
		}
	}
	if len(set) > odd {
		return nil, fmt.Errorf("%w: %d distinct values but only %d odd numbers below %d", ErrInvalidArgument, len(set), odd, b.MaxInt)
	}

	var attempts = 4*len(set) + 64
	var next int
	split := datasets.BalanceDataset(datasets.SplitDataset(set), func() uint32 {
		if attempts > 0 {
			attempts--
			if k := draw(odd); k >= 0 && k < odd {
				return uint32(2*k + 1)
			}
		}
		var k = next % odd
		next++
		return uint32(2*k + 1)
	})
	return datasets.Merge(split), nil
}

// Filter compresses the materialized batch into a quaternary filter
func (b *Batch) Filter() ([]byte, error) {
	set, err := b.Set()
	if err != nil {
		return nil, err
	}
	return quaternary.Make(set), nil
}
