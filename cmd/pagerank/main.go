package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vertex-lab/pagerank/pkg/crawler"
	"github.com/vertex-lab/pagerank/pkg/models"
	"github.com/vertex-lab/pagerank/pkg/pagerank"
	"github.com/vertex-lab/pagerank/pkg/store/redistore"
	"github.com/vertex-lab/pagerank/pkg/utils/sliceutils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: pagerank <corpus-dir>")
		os.Exit(1)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading the config: %v\n", err)
		os.Exit(1)
	}

	corpus, err := loadCorpus(context.Background(), config, os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading the corpus: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	ranks, err := pagerank.Sample(corpus, config.Damping, config.NumSamples)
	if err != nil {
		config.Log.Error("Sample: %v", err)
		os.Exit(1)
	}
	config.Log.Timing("Sample", time.Since(start))

	fmt.Printf("PageRank Results from Sampling (n = %d)\n", config.NumSamples)
	printRanks(ranks)

	start = time.Now()
	ranks, err = pagerank.Iterate(corpus, config.Damping)
	if err != nil {
		config.Log.Error("Iterate: %v", err)
		os.Exit(1)
	}
	config.Log.Timing("Iterate", time.Since(start))

	fmt.Println("PageRank Results from Iteration")
	printRanks(ranks)
}

// loadCorpus() returns the corpus for dir: from the Redis cache when it's
// enabled and already populated, otherwise by parsing the directory (and
// caching the result for the next run).
func loadCorpus(ctx context.Context, config *Config, dir string) (models.Corpus, error) {

	if config.RedisAddress == "" {
		return crawlDir(dir)
	}

	cl := redis.NewClient(&redis.Options{Addr: config.RedisAddress})
	store, err := redistore.NewCorpusStore(cl)
	if err != nil {
		return nil, err
	}

	fingerprint, err := crawler.Fingerprint(dir)
	if err != nil {
		return nil, err
	}

	if store.Exists(ctx, fingerprint) {
		config.Log.Info("corpus %s loaded from the cache", fingerprint[:8])
		return store.Load(ctx, fingerprint)
	}

	corpus, err := crawlDir(dir)
	if err != nil {
		return nil, err
	}

	if err := store.Save(ctx, fingerprint, corpus); err != nil {
		// log the error and continue without the cache
		config.Log.Warn("failed to cache corpus %s: %v", fingerprint[:8], err)
	}

	return corpus, nil
}

func crawlDir(dir string) (models.Corpus, error) {
	corpus, err := crawler.Crawl(dir)
	if err != nil {
		return nil, err
	}

	return corpus, corpus.Validate()
}

// printRanks() prints the ranks with 4-decimal rounding, sorted by page.
func printRanks(ranks models.PagerankMap) {
	for _, page := range sliceutils.SortedKeys(ranks) {
		fmt.Printf("  %s: %.4f\n", page, ranks[page])
	}
}
