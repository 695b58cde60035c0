package vec

import "math"

// ToDegrees converts radians to degrees
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ToRadians converts degrees to radians
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// AbsDegree wraps a negative angle into [0, 360). Non-negative
// angles are returned as is.
func AbsDegree(deg float64) float64 {
	if deg >= 0 {
		return deg
	}
	return math.Mod(math.Mod(deg, 360)+360, 360)
}
