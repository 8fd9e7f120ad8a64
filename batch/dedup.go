package batch

import "github.com/bits-and-blooms/bloom/v3"

// Bloom filter sizing for URL deduplication. A mirroring run rarely
// exceeds this many URLs; at this false positive rate a duplicate
// verdict wrongly skips roughly one URL in ten thousand.
const (
	dedupExpectedURLs      = 10000
	dedupFalsePositiveRate = 0.0001
)

// deduper tracks URLs already dispatched within one run so the same
// article is not fetched twice. False positives are possible; false
// negatives are not.
type deduper struct {
	f *bloom.BloomFilter
}

func newDeduper() *deduper {
	return &deduper{
		f: bloom.NewWithEstimates(dedupExpectedURLs, dedupFalsePositiveRate),
	}
}

// seen marks the URL and reports whether it was already present.
func (d *deduper) seen(url string) bool {
	return d.f.TestOrAddString(url)
}
