package utils

// FloatToLinear16 scales a normalized sample to the signed 16-bit linear
// range that feeds the G.711 companders.
func FloatToLinear16(x float64) int {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Truncate; the companders quantize far more coarsely than one LSB
	return int(x * 32767.0)
}
