/*
The redistore package caches parsed corpora on Redis, keyed by their
fingerprint, so repeated runs over the same directory can skip the parsing
step. Only the input corpus is cached; pagerank results are never persisted.
*/
package redistore

import (
	"context"
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/redis/go-redis/v9"

	"github.com/vertex-lab/pagerank/pkg/models"
)

// CorpusStore reads and writes corpora on Redis.
type CorpusStore struct {
	client *redis.Client
}

// NewCorpusStore() returns a CorpusStore that uses the provided Redis client.
func NewCorpusStore(cl *redis.Client) (*CorpusStore, error) {
	if cl == nil {
		return nil, ErrNilClientPointer
	}

	return &CorpusStore{client: cl}, nil
}

// KeyPages() returns the Redis key of the page set of the corpus with the
// specified fingerprint.
func KeyPages(fingerprint string) string {
	return fmt.Sprintf("corpus:%s:pages", fingerprint)
}

// KeyLinks() returns the Redis key of the link set of page.
func KeyLinks(fingerprint, page string) string {
	return fmt.Sprintf("corpus:%s:links:%s", fingerprint, page)
}

// Exists() returns whether a corpus with the specified fingerprint is cached.
// It ignores errors intentionally, returning false in case of any Redis issue.
func (s *CorpusStore) Exists(ctx context.Context, fingerprint string) bool {
	if s == nil || s.client == nil {
		return false
	}

	exists, err := s.client.Exists(ctx, KeyPages(fingerprint)).Result()
	if err != nil {
		return false
	}

	return exists > 0
}

// Save() writes the corpus to Redis in a single transaction: the page set,
// plus one link set per page that has outgoing links.
func (s *CorpusStore) Save(ctx context.Context, fingerprint string, corpus models.Corpus) error {

	if err := s.validateFields(); err != nil {
		return err
	}

	if err := corpus.Validate(); err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	for page, links := range corpus {
		pipe.SAdd(ctx, KeyPages(fingerprint), page)

		for link := range links.Iter() {
			pipe.SAdd(ctx, KeyLinks(fingerprint, page), link)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("Save(%s) failed to execute: %w", fingerprint, err)
	}

	return nil
}

// Load() rebuilds a cached corpus from Redis. It returns ErrCorpusNotFound if
// no corpus with the specified fingerprint has been saved.
func (s *CorpusStore) Load(ctx context.Context, fingerprint string) (models.Corpus, error) {

	if err := s.validateFields(); err != nil {
		return nil, err
	}

	pages, err := s.client.SMembers(ctx, KeyPages(fingerprint)).Result()
	if err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		return nil, ErrCorpusNotFound
	}

	corpus := make(models.Corpus, len(pages))
	for _, page := range pages {

		links, err := s.client.SMembers(ctx, KeyLinks(fingerprint, page)).Result()
		if err != nil {
			return nil, err
		}

		corpus[page] = mapset.NewSet(links...)
	}

	return corpus, nil
}

// validateFields() checks the fields of the CorpusStore struct and returns
// the appropriate error.
func (s *CorpusStore) validateFields() error {
	if s == nil {
		return ErrNilStorePointer
	}

	if s.client == nil {
		return ErrNilClientPointer
	}

	return nil
}

//---------------------------------ERROR-CODES---------------------------------

var ErrNilStorePointer = errors.New("nil CorpusStore pointer")
var ErrNilClientPointer = errors.New("nil client pointer")
var ErrCorpusNotFound = errors.New("corpus not found in the cache")
