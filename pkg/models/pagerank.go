package models

import "math"

// Distribution associates each page with the probability that it's the next
// page visited by the random surfer.
type Distribution map[string]float64

// PagerankMap associates each page with its pagerank value.
type PagerankMap map[string]float64

// Total() returns the sum of all values in the map.
func (p PagerankMap) Total() float64 {
	total := 0.0
	for _, rank := range p {
		total += rank
	}
	return total
}

// Distance() computes the L1 distance between two maps that are supposed to
// have the same keys. If map1 is nil or empty, it returns 0.0
func Distance(map1, map2 PagerankMap) float64 {
	distance := 0.0
	for key := range map1 {
		distance += math.Abs(map1[key] - map2[key])
	}
	return distance
}
