package elevator

import "github.com/bits-and-blooms/bitset"

// destinationSet tracks the floors a car has committed to visit as a bitmask
// over [0, maxFloors). At the MaxFloors <= 100 scale this system targets, a
// fixed bitset beats a map on both memory and the extremum scans the cost
// model needs every tick.
type destinationSet struct {
	bits      *bitset.BitSet
	maxFloors int
}

func newDestinationSet(maxFloors int) *destinationSet {
	return &destinationSet{
		bits:      bitset.New(uint(maxFloors)),
		maxFloors: maxFloors,
	}
}

func (d *destinationSet) add(floor int) {
	d.bits.Set(uint(floor))
}

func (d *destinationSet) remove(floor int) {
	d.bits.Clear(uint(floor))
}

func (d *destinationSet) has(floor int) bool {
	return d.bits.Test(uint(floor))
}

func (d *destinationSet) isEmpty() bool {
	return d.bits.None()
}

func (d *destinationSet) count() int {
	return int(d.bits.Count())
}

// max returns the highest set floor, false if empty.
func (d *destinationSet) max() (int, bool) {
	found := false
	var best uint
	for i, hasNext := d.bits.NextSet(0); hasNext; i, hasNext = d.bits.NextSet(i + 1) {
		best = i
		found = true
	}
	return int(best), found
}

// min returns the lowest set floor, false if empty.
func (d *destinationSet) min() (int, bool) {
	i, ok := d.bits.NextSet(0)
	return int(i), ok
}

// forEach visits every destination floor in ascending order.
func (d *destinationSet) forEach(fn func(floor int)) {
	for i, hasNext := d.bits.NextSet(0); hasNext; i, hasNext = d.bits.NextSet(i + 1) {
		fn(int(i))
	}
}

// hasAbove reports whether any destination lies strictly above floor.
func (d *destinationSet) hasAbove(floor int) bool {
	m, ok := d.max()
	return ok && m > floor
}

// hasBelow reports whether any destination lies strictly below floor.
func (d *destinationSet) hasBelow(floor int) bool {
	m, ok := d.min()
	return ok && m < floor
}
