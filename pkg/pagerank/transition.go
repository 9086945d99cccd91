package pagerank

import (
	"github.com/vertex-lab/pagerank/pkg/models"
)

/*
TransitionModel returns the probability distribution over which page the
random surfer visits next, given the current page.

With probability damping the surfer follows one of the outgoing links of page;
with probability 1-damping it jumps to a page chosen uniformly at random from
the whole corpus. A dangling page is treated as if it linked to every page, so
its damping mass is redistributed uniformly instead of being lost.

The returned weights are non-negative and sum to 1.0 within floating point
tolerance. TransitionModel is a pure function of its inputs.
*/
func TransitionModel(corpus models.Corpus, page string, damping float64) (models.Distribution, error) {

	if err := checkInputs(corpus, damping); err != nil {
		return nil, err
	}

	links, exists := corpus[page]
	if !exists {
		return nil, models.ErrPageNotFound
	}

	size := float64(len(corpus))
	jump := (1 - damping) / size

	dist := make(models.Distribution, len(corpus))
	for p := range corpus {
		dist[p] = jump
	}

	outDegree := links.Cardinality()
	if outDegree == 0 {
		// dangling page: spread the damping mass across the whole corpus
		follow := damping / size
		for p := range corpus {
			dist[p] += follow
		}

		return dist, nil
	}

	follow := damping / float64(outDegree)
	for link := range links.Iter() {
		dist[link] += follow
	}

	return dist, nil
}
