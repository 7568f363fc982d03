package evenbinary

import (
	"fmt"
	"math/bits"
	"math/rand"
)

// DefaultBatchSize is the number of samples generated when no batch size is given.
const DefaultBatchSize = 16

// Source is the subset of math/rand.Rand used for sampling, so tests can swap it.
type Source interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// Generator draws batches of even numbers. The zero value is ready to use: it samples
// from the global math/rand source, generates DefaultBatchSize samples and pads
// leniently.
type Generator struct {
	Rand      Source
	BatchSize int

	// Strict makes a batch fail with ErrWidthOverflow instead of emitting a value
	// wider than the padding width. Only bounds that are not a power of two can overflow.
	Strict bool

	Metrics *Metrics
}

// Batch holds one generated batch. Labels and Data have the same length.
type Batch struct {
	Labels []int
	Data   [][]int

	// Width is the padding width, floor(log2(MaxInt))
	Width  int
	MaxInt int
}

// PaddingWidth returns floor(log2(maxInt)), the number of digits reserved per sample.
func PaddingWidth(maxInt int) (int, error) {
	if maxInt <= 0 {
		return 0, fmt.Errorf("%w: max int must be positive, got %d", ErrInvalidArgument, maxInt)
	}
	return bits.Len(uint(maxInt)) - 1, nil
}

// DataGenerator returns batchSize labels and zero padded binary sequences of even numbers
// drawn uniformly from [0, maxInt), using the global math/rand source.
// The batch size is taken literally, so zero gives an empty batch; pass DefaultBatchSize
// for the usual 16 samples, or use a zero Generator.
func DataGenerator(maxInt, batchSize int) ([]int, [][]int, error) {
	if batchSize < 0 {
		return nil, nil, fmt.Errorf("%w: negative batch size %d", ErrInvalidArgument, batchSize)
	}
	if batchSize == 0 {
		if _, err := checkBound(maxInt); err != nil {
			return nil, nil, err
		}
		return []int{}, [][]int{}, nil
	}
	b, err := Generator{BatchSize: batchSize}.Generate(maxInt)
	if err != nil {
		return nil, nil, err
	}
	return b.Labels, b.Data, nil
}

func checkBound(maxInt int) (int, error) {
	width, err := PaddingWidth(maxInt)
	if err != nil {
		return 0, err
	}
	if maxInt/2 == 0 {
		return 0, fmt.Errorf("%w: max int %d leaves no even number to sample", ErrInvalidArgument, maxInt)
	}
	return width, nil
}

// Generate draws one batch with numbers below maxInt.
func (g Generator) Generate(maxInt int) (*Batch, error) {
	width, err := checkBound(maxInt)
	if err != nil {
		return nil, err
	}
	var src = g.Rand
	if src == nil {
		src = globalSource{}
	}
	var size = g.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	var b = &Batch{
		Labels: make([]int, size),
		Data:   make([][]int, size),
		Width:  width,
		MaxInt: maxInt,
	}
	var overflow int
	for i := 0; i < size; i++ {
		var value = 2 * src.Intn(maxInt/2)
		digits, err := IntToBin(value)
		if err != nil {
			return nil, err
		}
		if len(digits) > width {
			overflow++
			if g.Strict {
				g.Metrics.observe(0, overflow)
				return nil, fmt.Errorf("%w: %d needs %d digits, width is %d", ErrWidthOverflow, value, len(digits), width)
			}
		}
		b.Labels[i] = 1
		b.Data[i] = pad(digits, width)
	}
	g.Metrics.observe(size, overflow)
	return b, nil
}

// Len returns the number of samples in the batch
func (b *Batch) Len() int {
	return len(b.Data)
}

// Values decodes the data sequences back into numbers.
func (b *Batch) Values() ([]int, error) {
	var ret = make([]int, 0, len(b.Data))
	for i, digits := range b.Data {
		v, err := BinToInt(digits)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}
