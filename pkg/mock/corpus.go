// The mock package provides corpus fixtures for testing.
package mock

import (
	"fmt"
	"math/rand"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vertex-lab/pagerank/pkg/models"
)

// SetupCorpus() returns a corpus ready to be used in tests, based on the corpusType:
//
//	"one-page":  a single page with no links
//	"pair":      a <--> b
//	"triangle":  a --> b --> c --> a
//	"dangling":  a <--> b --> c, with c dangling
//	"flip":      b <--> a <-- c, a corpus that never converges with damping 1
func SetupCorpus(corpusType string) models.Corpus {
	switch corpusType {

	case "nil":
		return nil

	case "empty":
		return models.Corpus{}

	case "one-page":
		return models.Corpus{
			"1.html": mapset.NewSet[string](),
		}

	case "pair":
		return models.Corpus{
			"1.html": mapset.NewSet("2.html"),
			"2.html": mapset.NewSet("1.html"),
		}

	case "triangle":
		return models.Corpus{
			"1.html": mapset.NewSet("2.html"),
			"2.html": mapset.NewSet("3.html"),
			"3.html": mapset.NewSet("1.html"),
		}

	case "dangling":
		return models.Corpus{
			"1.html": mapset.NewSet("2.html"),
			"2.html": mapset.NewSet("1.html", "3.html"),
			"3.html": mapset.NewSet[string](),
		}

	case "flip":
		return models.Corpus{
			"1.html": mapset.NewSet("2.html"),
			"2.html": mapset.NewSet("1.html"),
			"3.html": mapset.NewSet("1.html"),
		}

	default:
		return nil
	}
}

// GenerateCorpus() returns a random corpus with the specified number of pages
// and links per page. Links don't include the page itself and have no repetitions.
func GenerateCorpus(pagesNum, linksPerPage int, rng *rand.Rand) models.Corpus {

	if linksPerPage >= pagesNum {
		return nil
	}

	corpus := make(models.Corpus, pagesNum)
	for i := 0; i < pagesNum; i++ {

		links := mapset.NewSet[string]()
		for links.Cardinality() < linksPerPage {

			j := rng.Intn(pagesNum)
			if j == i {
				continue
			}

			links.Add(pageName(j))
		}

		corpus[pageName(i)] = links
	}

	return corpus
}

func pageName(i int) string {
	return fmt.Sprintf("%d.html", i)
}
