package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	catalog "refdeck/internal/modules/catalog/domain"
	"refdeck/internal/modules/search/dto"
	"refdeck/internal/modules/search/service"
	"refdeck/internal/modules/search/usecase"
	apperrors "refdeck/internal/platform/errors"
)

type fakeCatalog struct {
	snap catalog.Snapshot
	err  error
}

func (f fakeCatalog) Content(context.Context) (catalog.Snapshot, error) {
	return f.snap, f.err
}

func twoLevelSnapshot() catalog.Snapshot {
	idx, _ := catalog.Build(catalog.Document{
		Topics: []catalog.Topic{
			{ID: "t1", Slug: "crime", Title: "Crime"},
			{ID: "t2", Slug: "evidence-procedure", Title: "Evidence & Procedure"},
		},
		Subtopics: []catalog.Subtopic{
			{ID: "s1", TopicID: "t1", Title: "Theft and Related Offences"},
			{ID: "s2", TopicID: "t2", Title: "Disclosure of Evidence"},
		},
		Cards: []catalog.Card{
			{ID: "1", Question: "What is appropriation?", Answer: "Assuming rights", Tags: []string{"theft"}, SubtopicID: "s1"},
			{ID: "2", Question: "What is unused material?", Answer: "Material not relied on", Tags: []string{"disclosure"}, SubtopicID: "s2"},
			{ID: "3", Question: "Stray", Answer: "orphan", Tags: []string{"theft"}, SubtopicID: "gone"},
		},
	})
	return catalog.Snapshot{Index: idx}
}

func outputIDs(cards []dto.CardOutput) []string {
	out := []string{}
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestSearchResolvesContext(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewSearchService(fakeCatalog{snap: twoLevelSnapshot()}))

	cards, err := uc.Search(context.Background(), dto.SearchInput{Term: "theft"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if got := outputIDs(cards); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Fatalf("term theft: got %v", got)
	}
	if cards[0].TopicTitle != "Crime" || cards[0].Subtopic != "Theft and Related Offences" || cards[0].Orphan {
		t.Fatalf("unexpected context %+v", cards[0])
	}
	if !cards[1].Orphan || cards[1].TopicSlug != "" {
		t.Fatalf("orphan should carry no topic, got %+v", cards[1])
	}

	cards, err = uc.Search(context.Background(), dto.SearchInput{Topic: "crime"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if got := outputIDs(cards); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("topic crime: got %v", got)
	}

	cards, err = uc.Search(context.Background(), dto.SearchInput{Limit: 2})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("limit should cap results, got %d", len(cards))
	}
}

func TestTopicOptions(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewSearchService(fakeCatalog{snap: twoLevelSnapshot()}))
	topics, err := uc.TopicOptions(context.Background(), "all")
	if err != nil {
		t.Fatalf("topic options: %v", err)
	}
	if len(topics) != 2 || topics[0].Slug != "crime" {
		t.Fatalf("unexpected topics %+v", topics)
	}
}

func TestSearchPropagatesLoadFailure(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewSearchService(fakeCatalog{err: apperrors.ErrLoadFailed}))
	if _, err := uc.Search(context.Background(), dto.SearchInput{}); !errors.Is(err, apperrors.ErrLoadFailed) {
		t.Fatalf("expected load failure, got %v", err)
	}
}
