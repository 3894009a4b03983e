package suffixdoubling

// countSortSymbols assigns every position of ext the class of its symbol.
// Classes are dense and follow symbol order. alphabetMax must be greater
// than every value in ext.
func countSortSymbols(ext []int32, alphabetMax int) []int {
	n := len(ext)
	cnt := make([]int, alphabetMax)
	for _, c := range ext {
		cnt[c]++
	}
	for i := 1; i < alphabetMax; i++ {
		cnt[i] += cnt[i-1]
	}

	order := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		cnt[ext[i]]--
		order[cnt[ext[i]]] = i
	}

	classes := make([]int, n)
	if n == 0 {
		return classes
	}
	class := 0
	classes[order[0]] = class
	for i := 1; i < n; i++ {
		if ext[order[i]] != ext[order[i-1]] {
			class++
		}
		classes[order[i]] = class
	}
	return classes
}

// countSortPairs returns dense classes for the pairs (first[j], second[j]),
// ordered lexicographically. Both components must lie in [0, len(first)).
//
// Positions are first sorted by second, then stably by first; the two passes
// compose into the order by (first, second).
func countSortPairs(first, second []int) []int {
	n := len(first)
	if len(second) != n {
		panic("suffixdoubling: misuse of countSortPairs")
	}

	cnt := make([]int, n)
	for _, s := range second {
		cnt[s]++
	}
	for i := 1; i < n; i++ {
		cnt[i] += cnt[i-1]
	}
	bySecond := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		cnt[second[i]]--
		bySecond[cnt[second[i]]] = i
	}

	clear(cnt)
	for _, f := range first {
		cnt[f]++
	}
	for i := 1; i < n; i++ {
		cnt[i] += cnt[i-1]
	}
	order := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		j := bySecond[i]
		cnt[first[j]]--
		order[cnt[first[j]]] = j
	}

	classes := make([]int, n)
	if n == 0 {
		return classes
	}
	class := 0
	classes[order[0]] = class
	for i := 1; i < n; i++ {
		cur, prev := order[i], order[i-1]
		if first[cur] != first[prev] || second[cur] != second[prev] {
			class++
		}
		classes[cur] = class
	}
	return classes
}

// orderFromClasses lists positions by ascending class. Positions sharing a
// class keep their numeric order.
func orderFromClasses(classes []int) []int {
	n := len(classes)
	cnt := make([]int, n)
	for _, c := range classes {
		cnt[c]++
	}
	for i := 1; i < n; i++ {
		cnt[i] += cnt[i-1]
	}
	order := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		cnt[classes[i]]--
		order[cnt[classes[i]]] = i
	}
	return order
}

// doubleClasses derives the classes of the length-2p substrings from the
// classes of the length-p ones. Substrings wrap around the end of the text.
func doubleClasses(classes []int, p int) []int {
	n := len(classes)
	second := make([]int, n)
	for j := range second {
		second[j] = classes[(j+p)%n]
	}
	return countSortPairs(classes, second)
}
