package order

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// A collate.Collator keeps internal buffers and is not safe for concurrent use.
var (
	mu       sync.Mutex
	collator = collate.New(language.English)
)

// Compare orders two titles the way a reader expects them in a directory:
// case and accents are secondary to the base letters.
func Compare(a, b string) int {
	mu.Lock()
	defer mu.Unlock()
	return collator.CompareString(a, b)
}

// ByTitle sorts items ascending by the title key. Items with equal titles
// keep their relative order.
func ByTitle[T any](items []T, title func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return Compare(title(items[i]), title(items[j])) < 0
	})
}

// Strings returns a sorted copy of values.
func Strings(values []string) []string {
	out := append([]string(nil), values...)
	ByTitle(out, func(s string) string { return s })
	return out
}
