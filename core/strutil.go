package core

// utoa converts an unsigned integer to a string without using fmt package
func utoa(n uint32) string {
	var buf [10]byte
	return string(appendUint(buf[:0], n))
}

// appendUint appends the decimal digits of n to b
func appendUint(b []byte, n uint32) []byte {
	if n == 0 {
		return append(b, '0')
	}

	// Count digits
	digits := 0
	for temp := n; temp > 0; temp /= 10 {
		digits++
	}

	// Fill from right to left
	start := len(b)
	for i := 0; i < digits; i++ {
		b = append(b, 0)
	}
	for pos := start + digits - 1; n > 0; pos-- {
		b[pos] = byte('0' + n%10)
		n /= 10
	}
	return b
}

// appendPadded appends n zero-padded to at least two digits
func appendPadded(b []byte, n uint32) []byte {
	if n < 10 {
		b = append(b, '0')
	}
	return appendUint(b, n)
}
