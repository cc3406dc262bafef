// SPDX-License-Identifier: EPL-2.0

package codec

// ITU-T G.711 companding.
//
// The encode side is the byte-exact contract the generated fixtures carry;
// the decode side is its inverse, reconstructing each quantization segment
// at its midpoint.

var alawBoundaries = [8]int{32, 64, 128, 256, 512, 1024, 2048, 4096}

// LinearToALaw compands a 16-bit linear value to one A-law byte.
func LinearToALaw(pcm int) byte {
	if pcm > 32767 {
		pcm = 32767
	} else if pcm < -32768 {
		pcm = -32768
	}

	var sign byte
	if pcm >= 0 {
		sign = 0x80
	}
	if pcm < 0 {
		pcm = -pcm
	}

	var exponent, mantissa int
	if pcm < 32 {
		exponent = 0
		mantissa = pcm >> 1
	} else {
		exponent = 7
		for idx, boundary := range alawBoundaries {
			if pcm < boundary {
				exponent = idx
				break
			}
		}

		shift := 4
		if exponent > 1 {
			shift = exponent + 3
		}
		mantissa = (pcm >> shift) & 0x0F
	}

	b := byte(exponent<<4 | mantissa)
	return (b ^ 0x55) | sign
}

// ALawToLinear expands one A-law byte back to a 16-bit linear value.
func ALawToLinear(b byte) int {
	positive := b&0x80 != 0
	x := (b & 0x7F) ^ 0x55
	exponent := int(x >> 4)
	mantissa := int(x & 0x0F)

	var magnitude int
	if exponent == 0 {
		magnitude = mantissa<<1 | 1
	} else {
		shift := 4
		if exponent > 1 {
			shift = exponent + 3
		}
		magnitude = mantissa<<shift + 1<<(shift-1)
	}

	if positive {
		return magnitude
	}
	return -magnitude
}

const (
	ulawBias = 132
	ulawMax  = 32635
)

// LinearToULaw compands a 16-bit linear value to one µ-law byte.
func LinearToULaw(pcm int) byte {
	if pcm > 32767 {
		pcm = 32767
	} else if pcm < -32767 {
		pcm = -32767
	}

	sign := byte(0x7F)
	if pcm < 0 {
		sign = 0xFF
		pcm = -pcm
	}
	if pcm > ulawMax {
		pcm = ulawMax
	}
	pcm += ulawBias

	exponent := 7
	for exp := 7; exp >= 0; exp-- {
		if pcm >= 1<<(exp+5) {
			exponent = exp
			break
		}
	}
	mantissa := (pcm >> (exponent + 1)) & 0x0F

	return byte(exponent<<4|mantissa) ^ sign
}

// ULawToLinear expands one µ-law byte back to a 16-bit linear value.
func ULawToLinear(b byte) int {
	negative := b&0x80 != 0
	x := b ^ 0x7F
	if negative {
		x = b ^ 0xFF
	}
	exponent := int(x>>4) & 0x07
	mantissa := int(x & 0x0F)

	magnitude := (16+mantissa)<<(exponent+1) + 1<<exponent - ulawBias
	if magnitude < 0 {
		magnitude = 0
	}

	if negative {
		return -magnitude
	}
	return magnitude
}
