package statistics

import "math"

// Classify places a hole result into its scoring category relative to par.
func Classify(strokes, par int) Category {
	switch diff := strokes - par; {
	case diff <= -2:
		return CategoryEagleOrBetter
	case diff == -1:
		return CategoryBirdie
	case diff == 0:
		return CategoryPar
	case diff == 1:
		return CategoryBogey
	case diff == 2:
		return CategoryDoubleBogey
	default:
		return CategoryWorse
	}
}

func (c *ScoringCounts) Add(category Category) {
	switch category {
	case CategoryEagleOrBetter:
		c.EaglesOrBetter++
	case CategoryBirdie:
		c.Birdies++
	case CategoryPar:
		c.Pars++
	case CategoryBogey:
		c.Bogeys++
	case CategoryDoubleBogey:
		c.DoubleBogeys++
	case CategoryWorse:
		c.Worse++
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return roundTo(float64(part)*100/float64(whole), 1)
}
