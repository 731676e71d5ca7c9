package component

// Merge collapses adjacent Text components (concatenating their strings)
// and drops adjacent duplicate WS components, per spec §4.2. Merge is
// idempotent: Merge(Merge(x)) == Merge(x) for any x (spec §8 property 2).
func Merge(seq []Component) []Component {
	if len(seq) == 0 {
		return nil
	}

	out := make([]Component, 0, len(seq))

	for _, c := range seq {
		if len(out) == 0 {
			out = append(out, c)
			continue
		}

		last := &out[len(out)-1]

		switch {
		case last.kind == Text && c.kind == Text:
			last.text += c.text
		case last.kind == WS && c.kind == WS:
			// drop duplicate
		default:
			out = append(out, c)
		}
	}

	return out
}

// Concat concatenates the given component sequences and merges the
// result, per spec §4.2. A nil slice argument contributes nothing,
// matching the spec's "each argument may be None, a single component,
// or a sequence" — callers pass a single component as []Component{c}.
func Concat(seqs ...[]Component) []Component {
	var total int

	for _, s := range seqs {
		total += len(s)
	}

	flat := make([]Component, 0, total)

	for _, s := range seqs {
		flat = append(flat, s...)
	}

	return Merge(flat)
}

// One is a convenience for building a single-component sequence to pass
// to Concat.
func One(c Component) []Component { return []Component{c} }
