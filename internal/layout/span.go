package layout

// spanLimit is where span arithmetic saturates. Anything this large is
// rejected by NewGrid long before it is used to size a slice.
const spanLimit = 1 << 31

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns the least common multiple of two positive spans, saturating at
// spanLimit.
func lcm(a, b int) int {
	if a >= spanLimit || b >= spanLimit {
		return spanLimit
	}
	q := a / gcd(a, b)
	if q > spanLimit/b {
		return spanLimit
	}
	return q * b
}

func addSpan(a, b int) int {
	if a+b >= spanLimit {
		return spanLimit
	}
	return a + b
}
