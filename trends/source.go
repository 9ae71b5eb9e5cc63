// Package trends discovers trending topics from pluggable sources and
// feeds them through a polling loop that normalizes, deduplicates, and
// scores them in a trend store.
package trends

// Source provides a stream of raw trend strings. Implementations tag
// each trend with their own identity so scoring can track provenance.
type Source interface {
	// FetchTrends returns the current batch of trend strings in the
	// "Title [id] | Source" format understood by types.ParseTrendString.
	FetchTrends() ([]string, error)
	// Name identifies the source in scores and logs.
	Name() string
}
