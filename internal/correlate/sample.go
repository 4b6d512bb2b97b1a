package correlate

import "math"

// Sample accumulates the sums needed for Pearson's r over valid
// (predictor, target) pairs of one entity.
type Sample struct {
	N     int
	SumX  float64
	SumY  float64
	SumXX float64
	SumYY float64
	SumXY float64
}

// Add folds one valid pair into the accumulator.
func (s *Sample) Add(x, y float64) {
	s.N++
	s.SumX += x
	s.SumY += y
	s.SumXX += x * x
	s.SumYY += y * y
	s.SumXY += x * y
}

// R computes Pearson's correlation coefficient from the accumulated
// sums. It reports ok=false when fewer than MinObservations pairs were
// seen or when either variable has no variance; an undefined r is
// excluded from aggregation, never treated as zero.
func (s *Sample) R() (r float64, ok bool) {
	if s.N < MinObservations {
		return 0, false
	}
	n := float64(s.N)
	denom := math.Sqrt(n*s.SumXX-s.SumX*s.SumX) * math.Sqrt(n*s.SumYY-s.SumY*s.SumY)
	if denom == 0 {
		return 0, false
	}
	r = (n*s.SumXY - s.SumX*s.SumY) / denom
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}
