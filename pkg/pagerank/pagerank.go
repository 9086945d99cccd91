/*
The pagerank package implements two independent estimators of the stationary
distribution of the damped random surfer over a corpus of pages:

  - Sample, a Monte Carlo estimator that counts the visits of a simulated
    random surfer;

  - Iterate, a deterministic fixed-point iteration of the pagerank recurrence.

On the same corpus the two converge to consistent results. Neither mutates the
corpus, so they can run in any order, or concurrently on the same corpus.
*/
package pagerank

import (
	"math/rand"

	"github.com/vertex-lab/pagerank/pkg/models"
)

// Rand is the source of uniform random numbers in [0, 1) used by the sampler.
// *rand.Rand implements it; tests can swap in a fixed sequence of values.
type Rand interface {
	Float64() float64
}

var _ Rand = (*rand.Rand)(nil)

// checkInputs() returns the appropriate error if the corpus or the damping
// factor are invalid.
func checkInputs(corpus models.Corpus, damping float64) error {
	if err := corpus.Validate(); err != nil {
		return err
	}

	if damping < 0 || damping > 1 {
		return models.ErrInvalidDamping
	}

	return nil
}
