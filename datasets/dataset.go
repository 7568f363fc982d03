// Package datasets implements the labeled sets that sample packages materialize into.
// A sample package that only generates positives, such as the even number dataset,
// balances its set by supplying its own negatives to BalanceDataset.
package datasets

// Dataset maps a feature value to its label
type Dataset map[uint32]bool

// Init allocates an empty dataset
func (d *Dataset) Init() {
	*d = make(map[uint32]bool)
}

// SplittedDataset holds the false values at index 0 and the true values at index 1
type SplittedDataset [2]map[uint32]struct{}

// SplitDataset splits dataset into a true set and a false set
func SplitDataset(d Dataset) (o SplittedDataset) {
	o[0] = make(map[uint32]struct{})
	o[1] = make(map[uint32]struct{})
	for k, v := range d {
		if v {
			o[1][k] = struct{}{}
		} else {
			o[0][k] = struct{}{}
		}
	}
	return
}

// Merge joins a splitted dataset back into a single dataset
func Merge(d SplittedDataset) (set Dataset) {
	set.Init()
	for k := range d[0] {
		set[k] = false
	}
	for k := range d[1] {
		set[k] = true
	}
	return
}

// BalanceDataset fills the smaller set with values from draw until it matches the bigger set.
// Values already present on the opposite side are skipped, so draw must be able to produce
// enough distinct values for the loop to finish.
func BalanceDataset(d SplittedDataset, draw func() uint32) SplittedDataset {
	if len(d[0]) == len(d[1]) {
		return d
	}
	for len(d[0]) < len(d[1]) {
		var w = draw()
		if _, ok := d[1][w]; !ok {
			d[0][w] = struct{}{}
		}
	}
	for len(d[1]) < len(d[0]) {
		var w = draw()
		if _, ok := d[0][w]; !ok {
			d[1][w] = struct{}{}
		}
	}
	return d
}
