package domain

import (
	catalog "refdeck/internal/modules/catalog/domain"
	nav "refdeck/internal/modules/navigation/domain"
	pref "refdeck/internal/modules/preference/domain"
	search "refdeck/internal/modules/search/domain"
)

type LoadStatus int

const (
	LoadPending LoadStatus = iota
	LoadReady
	LoadFailed
)

// LoadFailedMessage is the single notice shown when content cannot be loaded.
const LoadFailedMessage = "Unable to load study cards. Restart refdeck to try again."

// SessionState is the one session record. It has a single writer: the event
// handler currently running.
type SessionState struct {
	Fragment    string
	Route       nav.Route
	ActiveTopic string
	Theme       pref.Theme
	Selection   search.Selection
	Status      LoadStatus
}

func NewSessionState() SessionState {
	return SessionState{
		Route:       nav.Home,
		ActiveTopic: search.All,
		Theme:       pref.DefaultTheme,
		Selection:   search.Selection{}.Normalize(),
	}
}

// CardItem is a card with its resolved context for display.
type CardItem struct {
	Card      catalog.Card
	TopicSlug string
	Topic     string
	Subtopic  string
	Category  string
}

func NewCardItem(idx *catalog.Index, card catalog.Card) CardItem {
	lineage := idx.Lineage(card)
	item := CardItem{Card: card}
	if lineage.HasTopic {
		item.TopicSlug = lineage.Topic.Slug
		item.Topic = lineage.Topic.Title
	}
	if lineage.HasSubtopic {
		item.Subtopic = lineage.Subtopic.Title
	}
	if lineage.HasCategory {
		item.Category = lineage.Category.Title
	}
	return item
}

func NewCardItems(idx *catalog.Index, cards []catalog.Card) []CardItem {
	out := make([]CardItem, 0, len(cards))
	for _, card := range cards {
		out = append(out, NewCardItem(idx, card))
	}
	return out
}
