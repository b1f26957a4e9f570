package zoom

import "math"

// FactorIncrement is the multiplicative step between two adjacent zoom
// levels. It must stay identical to the engine's own constant.
const FactorIncrement = 1.2

const (
	// MinFactor is the smallest default zoom factor accepted.
	MinFactor float32 = 0.1
	// MinScaleFactor and MaxScaleFactor bound the device scale factor.
	MinScaleFactor float32 = 1.0
	MaxScaleFactor float32 = 3.0
)

// Level converts a linear zoom factor into the engine's logarithmic zoom
// level, so that Level(FactorIncrement^n) == n.
func Level(factor float64) float64 {
	return math.Log(factor) / math.Log(FactorIncrement)
}

// Factor is the inverse of Level.
func Factor(level float64) float64 {
	return math.Pow(FactorIncrement, level)
}

func clampScaleFactor(value float32) float32 {
	switch {
	case value > MaxScaleFactor:
		return MaxScaleFactor
	case value >= MinScaleFactor:
		return value
	default:
		// NaN lands here too.
		return MinScaleFactor
	}
}

func clampFactor(value float32) float32 {
	if value >= MinFactor {
		return value
	}
	return MinFactor
}
