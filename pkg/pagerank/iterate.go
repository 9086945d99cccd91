package pagerank

import (
	"github.com/vertex-lab/pagerank/pkg/models"
)

const (
	// the average absolute change per page at which the iteration has converged
	convergenceEpsilon = 1e-5

	// safety cap on the number of sweeps, so degenerate corpora fail instead
	// of looping forever
	maxSweeps = 10000
)

/*
Iterate computes the pagerank of each page by repeatedly applying the pagerank
recurrence

	rank(p) = (1-damping)/n + damping * ( Σ_{q -> p} rank(q)/outDegree(q) + danglingSum/n )

until the average absolute change per page drops to convergenceEpsilon.
Every sweep reads the frozen ranks of the previous sweep, never partially
updated values. The rank mass of dangling pages is redistributed uniformly
across all pages, the same policy used by TransitionModel, which keeps the
total rank at 1.0.

Iterate is deterministic: the same corpus and damping always produce the same
ranks. It returns ErrConvergenceFailure if the iteration hasn't converged
after maxSweeps sweeps.
*/
func Iterate(corpus models.Corpus, damping float64) (models.PagerankMap, error) {

	if err := checkInputs(corpus, damping); err != nil {
		return nil, err
	}

	pages := corpus.Pages()
	size := float64(len(pages))
	jump := (1 - damping) / size

	// index the corpus by incoming links, so each sweep visits only the
	// predecessors of a page instead of the whole corpus.
	inbound := make(map[string][]string, len(pages))
	outDegree := make(map[string]float64, len(pages))
	dangling := []string{}

	for _, page := range pages {
		degree := corpus.OutDegree(page)
		outDegree[page] = float64(degree)

		if degree == 0 {
			dangling = append(dangling, page)
			continue
		}

		for link := range corpus[page].Iter() {
			inbound[link] = append(inbound[link], page)
		}
	}

	ranks := make(models.PagerankMap, len(pages))
	for _, page := range pages {
		ranks[page] = 1 / size
	}

	for i := 0; i < maxSweeps; i++ {

		danglingSum := 0.0
		for _, page := range dangling {
			danglingSum += ranks[page]
		}
		danglingShare := damping * danglingSum / size

		newRanks := make(models.PagerankMap, len(pages))
		for _, page := range pages {

			inboundSum := 0.0
			for _, pred := range inbound[page] {
				inboundSum += ranks[pred] / outDegree[pred]
			}

			newRanks[page] = jump + damping*inboundSum + danglingShare
		}

		change := models.Distance(ranks, newRanks) / size
		ranks = newRanks

		if change <= convergenceEpsilon {
			return ranks, nil
		}
	}

	return nil, models.ErrConvergenceFailure
}
