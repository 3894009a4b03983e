package suffixdoubling

// powerSchedule returns the substring lengths materialized for a text of n
// symbols (sentinel included): 1, 2, 4, ... while the next power stays below n.
func powerSchedule(n int) []int {
	powers := []int{1}
	for last := 1; last*2 < n; last *= 2 {
		powers = append(powers, last*2)
	}
	return powers
}
