// The crawler package builds a corpus from a directory of HTML pages.
package crawler

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vertex-lab/pagerank/pkg/models"
)

// matches the target of an anchor tag, e.g. <a class="x" href="2.html">
var hrefRegexp = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

/*
Crawl parses a directory of HTML pages and returns the corpus, which
associates each page with the set of other corpus pages it links to.
The page identifier is the file name. Self links and links to pages outside
the directory are discarded, so every link target is itself a corpus key.
*/
func Crawl(dir string) (models.Corpus, error) {

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	corpus := models.Corpus{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		links := mapset.NewSet[string]()
		for _, match := range hrefRegexp.FindAllStringSubmatch(string(content), -1) {
			if match[1] != entry.Name() {
				links.Add(match[1])
			}
		}

		corpus[entry.Name()] = links
	}

	// keep only the links that point to other pages in the corpus
	pages := mapset.NewSet(corpus.Pages()...)
	for page, links := range corpus {
		corpus[page] = links.Intersect(pages)
	}

	return corpus, nil
}

/*
Fingerprint returns a stable identifier for the current content of dir,
obtained by hashing the name, size and modification time of every HTML file.
It's used as the cache key by the corpus store: editing, adding or removing a
page changes the fingerprint, which invalidates the cached corpus.
*/
func Fingerprint(dir string) (string, error) {

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	// entries are sorted by file name, so the hash is deterministic
	hash := sha256.New()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return "", err
		}

		fmt.Fprintf(hash, "%s:%d:%d\n", entry.Name(), info.Size(), info.ModTime().UnixNano())
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
