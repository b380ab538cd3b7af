package frequency

import "sort"

// Count pairs a value with the amount of times it was seen
type Count[T comparable] struct {
	Value T   `json:"value"`
	Count int `json:"count"`
}

// Counter counts occurrences of values and remembers the order in which each value was first seen.
// That order is the tie-break used by Mode and MostCommon.
type Counter[T comparable] struct {
	order  []T
	counts map[T]int
	total  int
}

func NewCounter[T comparable]() *Counter[T] {
	return &Counter[T]{
		counts: make(map[T]int),
	}
}

// CountValues builds a Counter from a slice of values
func CountValues[T comparable](values []T) *Counter[T] {
	counter := NewCounter[T]()
	for _, value := range values {
		counter.Add(value)
	}
	return counter
}

func (c *Counter[T]) Add(value T) {
	if _, ok := c.counts[value]; !ok {
		c.order = append(c.order, value)
	}
	c.counts[value] += 1
	c.total += 1
}

// Get returns the amount of times value was added
func (c *Counter[T]) Get(value T) int {
	return c.counts[value]
}

// Distinct returns the amount of different values
func (c *Counter[T]) Distinct() int {
	return len(c.order)
}

// Total returns the amount of values added
func (c *Counter[T]) Total() int {
	return c.total
}

// Mode returns the most frequent value. On a tie the value seen first wins.
// The boolean is false if nothing was counted.
func (c *Counter[T]) Mode() (T, int, bool) {
	var mode T
	best := 0
	for _, value := range c.order {
		if c.counts[value] > best {
			mode = value
			best = c.counts[value]
		}
	}
	return mode, best, best > 0
}

// Modes returns every value tied for the highest count, in first-seen order
func (c *Counter[T]) Modes() []T {
	_, best, ok := c.Mode()
	if !ok {
		return nil
	}

	var modes []T
	for _, value := range c.order {
		if c.counts[value] == best {
			modes = append(modes, value)
		}
	}
	return modes
}

// MostCommon returns all the counts sorted by descending frequency. Ties keep first-seen order.
func (c *Counter[T]) MostCommon() []Count[T] {
	counts := make([]Count[T], 0, len(c.order))
	for _, value := range c.order {
		counts = append(counts, Count[T]{Value: value, Count: c.counts[value]})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
