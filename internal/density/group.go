package density

// GroupingParams controls the grouping pass.
type GroupingParams struct {
	// Threshold is the pixel distance at or below which two points merge.
	// A negative value disables merging; peak removal still applies.
	Threshold int

	// PeaksThreshold is the distance beyond which neighbors no longer
	// lower a point's weight. It should be at least Threshold.
	PeaksThreshold int

	// PeaksFactor is the strength of peak removal, from 0 (none) to 1
	// (a coincident neighbor lowers the weight to zero).
	PeaksFactor float64
}

// DefaultGrouping holds the grouping parameters used unless overridden.
var DefaultGrouping = GroupingParams{
	Threshold:      10,
	PeaksThreshold: 20,
	PeaksFactor:    0.4,
}

// Group merges nearby points and dampens peaks. It returns the number of
// merges performed.
//
// Each active point i is compared with every later active point j. The
// distance d is capped at PeaksThreshold. When d <= Threshold, j is merged
// into i: i moves to the integer midpoint, its weight becomes the sum of
// both weights, j is removed and the scan over j starts again from i+1.
// Otherwise i's weight is lowered to
//
//	(1-PeaksFactor)*w + PeaksFactor*w*d/PeaksThreshold
//
// so a point loses more weight the closer its neighbors are. The pass is
// order dependent and must run sequentially. It terminates because every
// restart removes a point.
func (p *Points) Group(g GroupingParams) int {
	n := p.Len()
	keep := 1 - g.PeaksFactor
	merged := 0
	for i := 0; i < n; i++ {
		if !p.Active(i) {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !p.Active(j) {
				continue
			}
			dx, dy := p.X[i]-p.X[j], p.Y[i]-p.Y[j]
			d := ISqrt(dx*dx + dy*dy)
			if g.PeaksThreshold >= 0 {
				d = min(d, g.PeaksThreshold)
			}

			w := p.Percent[i]
			if d <= g.Threshold {
				// Sum w before this pair's decay, never the decayed value.
				p.X[i] = (p.X[i] + p.X[j]) / 2
				p.Y[i] = (p.Y[i] + p.Y[j]) / 2
				p.Percent[i] = w + p.Percent[j]
				p.Remove(j)
				merged++
				j = i
				continue
			}

			if g.PeaksThreshold > 0 {
				p.Percent[i] = keep*w + g.PeaksFactor*w*float64(d)/float64(g.PeaksThreshold)
			}
			if !p.Active(i) {
				break
			}
		}
	}
	return merged
}
