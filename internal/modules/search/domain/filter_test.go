package domain_test

import (
	"reflect"
	"testing"

	catalog "refdeck/internal/modules/catalog/domain"
	"refdeck/internal/modules/search/domain"
)

func exampleIndex(t *testing.T) *catalog.Index {
	t.Helper()
	idx, rejected := catalog.Build(catalog.Document{
		Categories: []catalog.Category{
			{ID: "c1", Slug: "crime", Title: "Crime", Summary: "Offences"},
			{ID: "c2", Slug: "procedure", Title: "Procedure", Summary: "Custody and court"},
		},
		Topics: []catalog.Topic{
			{ID: "t1", Slug: "t1", Title: "State of Mind", CategoryID: "c1"},
			{ID: "t2", Slug: "t2", Title: "General Defences", CategoryID: "c1", KeyPoints: []string{"duress of circumstances"}},
			{ID: "t3", Slug: "t3", Title: "Custody", CategoryID: "c2", CoreTasks: []string{"Review detention"}},
		},
		Cards: []catalog.Card{
			{ID: "1", Question: "What does mens rea require?", Answer: "A guilty mind", Tags: []string{"mens-rea"}, TopicID: "t1"},
			{ID: "2", Question: "When is self-defence available?", Answer: "Reasonable force", Tags: []string{"defences"}, TopicID: "t2"},
			{ID: "3", Question: "Who authorises extension?", Answer: "A superintendent", Tags: []string{"defences", "custody"}, TopicID: "t3"},
			{ID: "4", Question: "Orphan about mens rea", Answer: "Still searchable", Tags: []string{"defences"}, TopicID: "gone"},
		},
	})
	if len(rejected) != 0 {
		t.Fatalf("fixture should be valid: %v", rejected)
	}
	return idx
}

func ids(cards []catalog.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestFilterExampleSelections(t *testing.T) {
	t.Parallel()
	idx, _ := catalog.Build(catalog.Document{
		Topics: []catalog.Topic{
			{ID: "t1", Slug: "t1", Title: "Topic one"},
			{ID: "t2", Slug: "t2", Title: "Topic two"},
		},
		Cards: []catalog.Card{
			{ID: "1", Question: "Explain mens rea", Answer: "x", Tags: []string{"mens-rea"}, TopicID: "t1"},
			{ID: "2", Question: "Explain duress", Answer: "y", Tags: []string{"defences"}, TopicID: "t2"},
		},
	})
	cards := idx.Cards()

	cases := []struct {
		name string
		sel  domain.Selection
		want []string
	}{
		{"topic", domain.Selection{Topic: "t1"}, []string{"1"}},
		{"tag", domain.Selection{Tag: "defences"}, []string{"2"}},
		{"term", domain.Selection{Term: "mens"}, []string{"1"}},
	}
	for _, tc := range cases {
		if got := ids(domain.Filter(idx, cards, tc.sel)); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestFilterIdentity(t *testing.T) {
	t.Parallel()
	idx := exampleIndex(t)
	cards := idx.Cards()
	all := domain.Selection{Category: domain.All, Topic: domain.All, Tag: domain.All, Term: ""}
	if got := domain.Filter(idx, cards, all); !reflect.DeepEqual(got, cards) {
		t.Fatalf("identity selection should return every card, got %v", ids(got))
	}
	if got := domain.Filter(idx, cards, domain.Selection{Term: "   "}); !reflect.DeepEqual(got, cards) {
		t.Fatalf("blank term should be inactive, got %v", ids(got))
	}
	if !all.IsIdentity() || !(domain.Selection{}).IsIdentity() {
		t.Fatalf("zero selection should be the identity")
	}
}

func TestFilterCategoryExcludesOrphans(t *testing.T) {
	t.Parallel()
	idx := exampleIndex(t)
	got := ids(domain.Filter(idx, idx.Cards(), domain.Selection{Category: "crime"}))
	if !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("category crime: got %v", got)
	}
	if got := domain.Filter(idx, idx.Cards(), domain.Selection{Category: "unknown"}); len(got) != 0 {
		t.Fatalf("unknown category should match nothing, got %v", ids(got))
	}
	if got := domain.Filter(idx, idx.Cards(), domain.Selection{Topic: "unknown"}); len(got) != 0 {
		t.Fatalf("unknown topic should match nothing, got %v", ids(got))
	}
}

func TestFilterTagIsCaseSensitive(t *testing.T) {
	t.Parallel()
	idx := exampleIndex(t)
	if got := domain.Filter(idx, idx.Cards(), domain.Selection{Tag: "Defences"}); len(got) != 0 {
		t.Fatalf("tag match should be exact, got %v", ids(got))
	}
	if got := ids(domain.Filter(idx, idx.Cards(), domain.Selection{Term: "MENS REA"})); !reflect.DeepEqual(got, []string{"1", "4"}) {
		t.Fatalf("term match should ignore case, got %v", got)
	}
}

func TestFilterTermSearchesAncestors(t *testing.T) {
	t.Parallel()
	idx := exampleIndex(t)
	cases := map[string][]string{
		"duress of circumstances": {"2"},
		"review detention":        {"3"},
		"custody and court":       {"3"},
		"general defences":        {"2"},
		"superintendent":          {"3"},
	}
	for term, want := range cases {
		if got := ids(domain.Filter(idx, idx.Cards(), domain.Selection{Term: term})); !reflect.DeepEqual(got, want) {
			t.Fatalf("term %q: got %v want %v", term, got, want)
		}
	}
}

func TestFilterOutputIsOrderedSubsequence(t *testing.T) {
	t.Parallel()
	idx := exampleIndex(t)
	input := idx.Cards()
	for _, sel := range selections() {
		out := domain.Filter(idx, input, sel)
		j := 0
		for _, card := range out {
			for j < len(input) && input[j].ID != card.ID {
				j++
			}
			if j == len(input) {
				t.Fatalf("selection %+v: output %v is not a subsequence of input", sel, ids(out))
			}
			j++
		}
	}
}

func TestFilterConjunctionComposes(t *testing.T) {
	t.Parallel()
	idx := exampleIndex(t)
	input := idx.Cards()
	for _, sel := range selections() {
		together := domain.Filter(idx, input, sel)

		stepwise := domain.Filter(idx, input, domain.Selection{Category: sel.Category})
		stepwise = domain.Filter(idx, stepwise, domain.Selection{Topic: sel.Topic})
		stepwise = domain.Filter(idx, stepwise, domain.Selection{Tag: sel.Tag})
		stepwise = domain.Filter(idx, stepwise, domain.Selection{Term: sel.Term})

		reversed := domain.Filter(idx, input, domain.Selection{Term: sel.Term})
		reversed = domain.Filter(idx, reversed, domain.Selection{Tag: sel.Tag})
		reversed = domain.Filter(idx, reversed, domain.Selection{Category: sel.Category, Topic: sel.Topic})

		if !reflect.DeepEqual(ids(together), ids(stepwise)) || !reflect.DeepEqual(ids(together), ids(reversed)) {
			t.Fatalf("selection %+v: together %v stepwise %v reversed %v", sel, ids(together), ids(stepwise), ids(reversed))
		}
	}
}

func TestFilterIsPure(t *testing.T) {
	t.Parallel()
	idx := exampleIndex(t)
	input := idx.Cards()
	sel := domain.Selection{Tag: "defences", Term: "a"}
	first := domain.Filter(idx, input, sel)
	second := domain.Filter(idx, input, sel)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs should give identical output")
	}
	if !reflect.DeepEqual(input, idx.Cards()) {
		t.Fatalf("input should not be modified")
	}
}

func selections() []domain.Selection {
	out := []domain.Selection{}
	for _, category := range []string{domain.All, "crime", "procedure"} {
		for _, topic := range []string{domain.All, "t2", "t3"} {
			for _, tag := range []string{domain.All, "defences", "mens-rea"} {
				for _, term := range []string{"", "a", "mens"} {
					out = append(out, domain.Selection{Category: category, Topic: topic, Tag: tag, Term: term})
				}
			}
		}
	}
	return out
}
