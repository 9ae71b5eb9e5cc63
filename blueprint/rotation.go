package blueprint

// rotation is a tagged cyclic sequence with an explicit advance operation.
// It backs the visual-pattern and caption-layout counters so the pacing state
// machine never touches bare indices.
type rotation struct {
	tags []string
	idx  int
}

// newRotation starts the cycle just before tags[0] so the first Next lands
// on the first tag.
func newRotation(tags ...string) *rotation {
	return &rotation{tags: tags, idx: len(tags) - 1}
}

// Next advances the cycle and returns the new current tag.
func (r *rotation) Next() string {
	r.idx = (r.idx + 1) % len(r.tags)
	return r.tags[r.idx]
}

// Current returns the tag the cycle is parked on.
func (r *rotation) Current() string {
	return r.tags[r.idx]
}
