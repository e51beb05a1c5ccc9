package density

// Weight adjustment constants, in percent of the maximum weight.
const (
	// WeightSensitivity marks the weights treated as "barely visible".
	WeightSensitivity = 1

	// WeightBoostTo is where barely visible weights are lifted to.
	WeightBoostTo = 50
)

// Normalize converts raw weights into percentages of MaxWeight.
//
// With adjust set, weights at or below WeightSensitivity percent are
// scaled up to WeightBoostTo percent, and the remaining range is mapped
// linearly onto [WeightBoostTo, 100]. The maximum weight always maps
// to 100.
//
// If MaxWeight is not positive, every percent is zero.
func (p *Points) Normalize(adjust bool) {
	maxWeight := p.MaxWeight
	if maxWeight <= 0 {
		clear(p.Percent)
		return
	}

	absSensitivity := maxWeight * WeightSensitivity / 100
	absBoostTo := maxWeight * WeightBoostTo / 100
	for i, w := range p.raw {
		if adjust {
			if w <= absSensitivity {
				w *= absBoostTo / absSensitivity
			} else {
				w = absBoostTo + (w-absSensitivity)*((maxWeight-absBoostTo)/(maxWeight-absSensitivity))
			}
		}
		p.Percent[i] = 100 * w / maxWeight
	}
}
