package order_test

import (
	"reflect"
	"testing"

	"refdeck/internal/platform/order"
)

func TestCompareIsLocaleAware(t *testing.T) {
	t.Parallel()
	if order.Compare("apple", "Banana") >= 0 {
		t.Fatalf("apple should sort before Banana regardless of case")
	}
	if order.Compare("éclair", "fudge") >= 0 {
		t.Fatalf("accented letters should sort with their base letter")
	}
}

func TestByTitleIsStableAndIdempotent(t *testing.T) {
	t.Parallel()
	type item struct{ id, title string }
	items := []item{{"3", "Theft"}, {"1", "Assault"}, {"2", "Theft"}, {"4", "burglary"}}

	order.ByTitle(items, func(i item) string { return i.title })
	got := []string{items[0].id, items[1].id, items[2].id, items[3].id}
	want := []string{"1", "4", "3", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order mismatch: got %v want %v", got, want)
	}

	again := append([]item(nil), items...)
	order.ByTitle(again, func(i item) string { return i.title })
	if !reflect.DeepEqual(again, items) {
		t.Fatalf("sorting twice should be idempotent")
	}
}

func TestStringsCopies(t *testing.T) {
	t.Parallel()
	in := []string{"mens-rea", "defences", "actus-reus"}
	out := order.Strings(in)
	if !reflect.DeepEqual(out, []string{"actus-reus", "defences", "mens-rea"}) {
		t.Fatalf("unexpected order %v", out)
	}
	if in[0] != "mens-rea" {
		t.Fatalf("input should not be mutated")
	}
}
