// Package bytestats computes descriptive statistics over an immutable byte
// sequence: mean, median, population standard deviation, and Pearson's
// second skewness coefficient. The median is located by repeated selection
// sweeps rather than sorting, so the input is never mutated, copied, or
// reordered, and each function uses only constant auxiliary memory. All
// functions are pure and read-only; concurrent calls on shared input need
// no locking. The single error condition, empty input (or an out-of-range
// rank), is signaled by a false second return.
package bytestats

// Mean returns the arithmetic average of the bytes in data, or false when
// data is empty.
func Mean(data []byte) (float32, bool) {
	if len(data) == 0 {
		return 0, false
	}
	var sum float32
	for _, v := range data {
		sum += float32(v)
	}
	return sum / float32(len(data)), true
}

// Median returns the median of the bytes in data without sorting or copying
// them, or false when data is empty. A single fused traversal tracks both
// the current and the previously found order statistic, so even-length
// input does not pay for a second O(n*k) pass; when the two middle values
// are equal no averaging step runs, as equal values average to themselves.
func Median(data []byte) (float32, bool) {
	if len(data) == 0 {
		return 0, false
	}

	k := len(data) / 2

	items := 0     // positions covered so far in sorted order
	lastCount := 0 // occurrences of the most recently found value
	idx := -1      // index of the most recently found value
	prevIdx := -1  // index found by the sweep before that
	for items <= k {
		prevIdx = idx
		var prev *byte
		if idx >= 0 {
			prev = &data[idx]
		}
		f, ok := NextMin(data, prev)
		if !ok {
			break
		}
		lastCount = f.Count
		items += f.Count
		idx = f.Index
	}

	med := float32(data[idx])
	if len(data)%2 == 0 {
		// Positions covered before the last found value. If they reach past
		// rank k-1, the lower middle belongs to the previous value's run.
		if items-lastCount > k-1 {
			med = (med + float32(data[prevIdx])) / 2
		}
	}
	return med, true
}

// StdDevPop returns the population standard deviation of the bytes in data
// (normalized by N, not N-1), or false when data is empty. The mean is
// taken as an argument so a caller that already computed it does not pay
// for it twice. The square root is the approximate sqrt32, not math.Sqrt.
func StdDevPop(mean float32, data []byte) (float32, bool) {
	if len(data) == 0 {
		return 0, false
	}
	var sum float32
	for _, v := range data {
		d := float32(v) - mean
		sum += d * d
	}
	return sqrt32(sum / float32(len(data))), true
}

// PearsonSkewMedian returns Pearson's second skewness coefficient,
// 3*(mean-median)/stddev, over the bytes in data, or false when data is
// empty. A constant sequence has zero standard deviation; the division
// then yields a signed infinity or NaN per IEEE float32 semantics, which
// is deliberate and not masked.
func PearsonSkewMedian(data []byte) (float32, bool) {
	avg, ok := Mean(data)
	if !ok {
		return 0, false
	}
	med, ok := Median(data)
	if !ok {
		return 0, false
	}
	std, ok := StdDevPop(avg, data)
	if !ok {
		return 0, false
	}
	return 3 * (avg - med) / std, true
}
