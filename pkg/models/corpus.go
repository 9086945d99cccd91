/*
The models package defines the fundamental structures shared by the crawler,
the corpus store and the pagerank algorithms.
*/
package models

import (
	"errors"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vertex-lab/pagerank/pkg/utils/sliceutils"
)

// Corpus associates each page with the set of pages it links to.
// A page with an empty link set is a dangling page.
// The corpus is built once by the crawler and never mutated afterwards.
type Corpus map[string]mapset.Set[string]

// Validate() returns the appropriate error if the corpus is nil or empty.
func (c Corpus) Validate() error {
	if c == nil {
		return ErrNilCorpus
	}

	if len(c) == 0 {
		return ErrEmptyCorpus
	}

	return nil
}

// Contains() returns whether page is a key of the corpus.
func (c Corpus) Contains(page string) bool {
	_, exists := c[page]
	return exists
}

// Pages() returns the pages of the corpus in canonical (sorted) order.
// Both algorithms visit pages in this order, which makes them reproducible
// under a seeded random source.
func (c Corpus) Pages() []string {
	return sliceutils.SortedKeys(c)
}

// OutDegree() returns the number of outgoing links of page, or 0 if the page
// is not in the corpus.
func (c Corpus) OutDegree(page string) int {
	links, exists := c[page]
	if !exists || links == nil {
		return 0
	}

	return links.Cardinality()
}

//---------------------------------ERROR-CODES---------------------------------

// Corpus errors
var ErrNilCorpus = errors.New("corpus is nil")
var ErrEmptyCorpus = errors.New("corpus is empty")
var ErrPageNotFound = errors.New("page not found in the corpus")

// parameter errors
var ErrInvalidDamping = errors.New("damping should be a number between 0 and 1")
var ErrInvalidSampleCount = errors.New("numSamples should be greater than zero")

// algorithm errors
var ErrConvergenceFailure = errors.New("pagerank iteration exceeded the maximum number of sweeps")
