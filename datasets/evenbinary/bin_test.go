package evenbinary

import (
	"errors"
	"reflect"
	"testing"
)

func TestIntToBin(t *testing.T) {
	testCases := []struct {
		in   int
		want []int
	}{
		{0, []int{0}},
		{1, []int{1}},
		{2, []int{1, 0}},
		{5, []int{1, 0, 1}},
		{14, []int{1, 1, 1, 0}},
		{255, []int{1, 1, 1, 1, 1, 1, 1, 1}},
		{256, []int{1, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tc := range testCases {
		got, err := IntToBin(tc.in)
		if err != nil {
			t.Fatalf("IntToBin(%d): %v", tc.in, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("IntToBin(%d) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIntToBinNegative(t *testing.T) {
	for _, n := range []int{-1, -2, -1 << 20} {
		if _, err := IntToBin(n); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("IntToBin(%d) error = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestIntToBinPure(t *testing.T) {
	a, _ := IntToBin(1234)
	b, _ := IntToBin(1234)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("different results: %v vs %v", a, b)
	}
	a[0] = 7
	if b[0] != 1 {
		t.Errorf("results share memory")
	}
}

func TestBinToInt(t *testing.T) {
	testCases := []struct {
		in   []int
		want int
	}{
		{[]int{0}, 0},
		{[]int{0, 0, 1, 0}, 2},
		{[]int{1, 1, 1, 0}, 14},
	}
	for _, tc := range testCases {
		got, err := BinToInt(tc.in)
		if err != nil {
			t.Fatalf("BinToInt(%v): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("BinToInt(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestBinToIntInvalid(t *testing.T) {
	var tooLong = make([]int, 70)
	tooLong[0] = 1
	for _, in := range [][]int{nil, {}, {2}, {1, -1}, tooLong} {
		if _, err := BinToInt(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("BinToInt(%v) error = %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestPad(t *testing.T) {
	if got := pad([]int{1, 0}, 4); !reflect.DeepEqual(got, []int{0, 0, 1, 0}) {
		t.Errorf("pad = %v", got)
	}
	if got := pad([]int{1, 0, 1, 0}, 3); !reflect.DeepEqual(got, []int{1, 0, 1, 0}) {
		t.Errorf("wider sequence changed: %v", got)
	}
}

// round trip fuzz
func FuzzIntToBin(f *testing.F) {
	f.Add(0)
	f.Add(1)
	f.Add(1 << 30)
	f.Fuzz(func(t *testing.T, n int) {
		digits, err := IntToBin(n)
		if n < 0 {
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("IntToBin(%d) accepted a negative number", n)
			}
			return
		}
		if err != nil {
			t.Fatalf("IntToBin(%d): %v", n, err)
		}
		if n > 0 && digits[0] != 1 {
			t.Errorf("IntToBin(%d) = %v has a leading zero", n, digits)
		}
		back, err := BinToInt(digits)
		if err != nil {
			t.Fatalf("BinToInt(%v): %v", digits, err)
		}
		if back != n {
			t.Errorf("round trip %d -> %v -> %d", n, digits, back)
		}
	})
}

func BenchmarkIntToBin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IntToBin(i)
	}
}
