// internal/bytestats/select.go
package bytestats

// maxValue is the top of the 8-bit value domain. A sweep whose previous
// bound already sits here has nothing left to find.
const maxValue = 0xFF

// Found reports where a selection sweep landed: the first index at which
// the chosen value occurs, and how many times it occurs in total.
type Found struct {
	// Index is the lowest positional index of the chosen value.
	Index int
	// Count is the total number of occurrences of the chosen value.
	Count int
}

// NextMin scans data for the smallest value strictly greater than prev, or
// for the smallest value overall when prev is nil. It returns the first
// index and total occurrence count of that value, in a single pass with
// constant extra state. The second return is false when data is empty or
// when no value exceeds prev (including prev at the top of the domain).
func NextMin(data []byte, prev *byte) (Found, bool) {
	if len(data) == 0 {
		return Found{}, false
	}

	low := byte(maxValue) // running minimum, inclusive by default
	idx := 0              // first index of low, valid whenever count > 0
	count := 0            // occurrences of low seen so far

	if prev == nil {
		for i, v := range data {
			switch {
			case v < low:
				low, idx, count = v, i, 1
			case v == low:
				count++
			}
		}
		return Found{Index: idx, Count: count}, count > 0
	}

	bound := *prev
	// seen distinguishes "no candidate yet" from a legitimate run of the
	// domain maximum, which the default low would otherwise swallow.
	seen := false
	for i, v := range data {
		switch {
		case v > bound && v < low:
			low, idx, count = v, i, 1
			seen = true
		case v == low:
			count++
			if !seen {
				idx = i
				seen = true
			}
		}
	}
	// If the running minimum never moved past the bound, the bound was
	// already the largest value present.
	if low == bound {
		count = 0
	}
	if count == 0 {
		return Found{}, false
	}
	return Found{Index: idx, Count: count}, true
}

// KthIndex returns the index of the element that would occupy position k
// (0-indexed) if data were sorted ascending. The input is never sorted,
// copied, or mutated: repeated NextMin sweeps advance a previous-value
// bound and accumulate occurrence counts until position k is covered.
// O(n*k) time, O(1) space. Returns false when k is outside [0, len).
func KthIndex(data []byte, k int) (int, bool) {
	if k < 0 || k >= len(data) {
		return 0, false
	}

	items := 0
	idx := -1
	for items <= k {
		var prev *byte
		if idx >= 0 {
			prev = &data[idx]
		}
		f, ok := NextMin(data, prev)
		if !ok {
			break
		}
		items += f.Count
		idx = f.Index
	}
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
