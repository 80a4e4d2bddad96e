// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// Float32ToPCM clamps x to [-1, 1] and scales it to a signed integer of the
// given bit depth (8, 16, 24 or 32). Unknown depths are treated as 16-bit.
func Float32ToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	var maxVal float64
	switch bitDepth {
	case 8:
		maxVal = 127
	case 24:
		maxVal = 8388607
	case 32:
		maxVal = 2147483647
	default:
		maxVal = 32767
	}

	return int(float64(x) * maxVal)
}

// Floats16 converts src into dst as 16-bit PCM and returns the number of
// samples written, min(len(dst), len(src)).
func Floats16(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}

	return n
}

// PCMToFloat32 scales a signed integer sample of the given bit depth
// (8, 16, 24 or 32) to [-1, 1). Unknown depths are treated as 16-bit.
func PCMToFloat32(v int, bitDepth int) float32 {
	var scale float64
	switch bitDepth {
	case 8:
		scale = 128
	case 24:
		scale = 8388608
	case 32:
		scale = 2147483648
	default:
		scale = 32768
	}

	return float32(float64(v) / scale)
}
