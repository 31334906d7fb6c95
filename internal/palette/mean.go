package palette

// mean returns the floored average of values. The sum is widened to uint64 so
// summing many 8-bit values cannot wrap. values must not be empty.
func mean(values []uint8) uint8 {
	var sum uint64
	for _, v := range values {
		sum += uint64(v)
	}
	return uint8(sum / uint64(len(values)))
}
