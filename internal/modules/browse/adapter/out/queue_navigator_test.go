package out_test

import (
	"reflect"
	"testing"

	browseout "refdeck/internal/modules/browse/adapter/out"
)

func TestQueueNavigatorDrainsInOrder(t *testing.T) {
	t.Parallel()

	q := browseout.NewQueueNavigator()
	if got := q.Drain(); len(got) != 0 {
		t.Fatalf("expected empty queue, got %v", got)
	}
	q.Navigate("#browse")
	q.Navigate("#topic/theft")
	if got := q.Drain(); !reflect.DeepEqual(got, []string{"#browse", "#topic/theft"}) {
		t.Fatalf("unexpected drain %v", got)
	}
	if got := q.Drain(); len(got) != 0 {
		t.Fatalf("drain should empty the queue, got %v", got)
	}
}
