package loopscroll

// Wrap returns the position of number inside a cyclic sequence of the given
// length. The result is always in [0, length), also for negative numbers,
// which are common while the view scrolls backwards past index 0.
//
// length must be positive.
func Wrap(number, length int) int {
	if number >= 0 {
		return number % length
	}
	remain := -number % length
	if remain == 0 {
		return 0
	}
	return length - remain
}
