package pagerank

import (
	"math/rand"
	"time"

	"github.com/vertex-lab/pagerank/pkg/models"
)

// residue tolerated by weightedChoose when floating point rounding leaves the
// draw slightly positive after a page's weight has been subtracted.
const chooseEpsilon = 1e-9

/*
weightedChoose draws one page at random, such that the probability of a page
being returned is proportional to its weight in dist. Pages are visited in the
given order, which has to be fixed for the draw to be reproducible under a
seeded random source.

Instead of allocating the cumulative distribution, the draw r walks the pages
subtracting each weight, and stops at the page where r first drops to zero
(inverse-CDF sampling). Rounding can leave r slightly positive after the last
page; the last page is returned in that case, so a page is always returned.
*/
func weightedChoose(pages []string, dist models.Distribution, rng Rand) string {

	total := 0.0
	for _, page := range pages {
		total += dist[page]
	}

	r := rng.Float64() * total
	for _, page := range pages {
		r -= dist[page]
		if r <= chooseEpsilon {
			return page
		}
	}

	return pages[len(pages)-1]
}

/*
Sample estimates the pagerank of each page by simulating numSamples steps of
the random surfer, starting from the first page in canonical order. Each visit
adds 1/numSamples to the rank of the visited page, so the returned ranks sum
to 1.0.

The transition distribution of a page doesn't change across steps, so all the
distributions are computed once up front instead of once per step.
*/
func Sample(corpus models.Corpus, damping float64, numSamples int) (models.PagerankMap, error) {

	if err := checkInputs(corpus, damping); err != nil {
		return nil, err
	}

	if numSamples <= 0 {
		return nil, models.ErrInvalidSampleCount
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return sample(corpus, damping, numSamples, rng)
}

// sample implements the random surfer simulation. It accepts a random number
// generator for reproducibility in tests.
func sample(corpus models.Corpus, damping float64, numSamples int, rng Rand) (models.PagerankMap, error) {

	pages := corpus.Pages()

	transitions := make(map[string]models.Distribution, len(pages))
	for _, page := range pages {
		dist, err := TransitionModel(corpus, page, damping)
		if err != nil {
			return nil, err
		}

		transitions[page] = dist
	}

	pagerank := make(models.PagerankMap, len(pages))
	for _, page := range pages {
		pagerank[page] = 0
	}

	increment := 1.0 / float64(numSamples)
	current := pages[0]

	for i := 0; i < numSamples; i++ {
		pagerank[current] += increment
		current = weightedChoose(pages, transitions[current], rng)
	}

	return pagerank, nil
}
