package domain

import (
	"strings"

	catalog "refdeck/internal/modules/catalog/domain"
)

// All marks a facet as inactive.
const All = "all"

// Selection is one facet selection. Empty facets are treated as All.
type Selection struct {
	Category string
	Topic    string
	Tag      string
	Term     string
}

func (s Selection) Normalize() Selection {
	if strings.TrimSpace(s.Category) == "" {
		s.Category = All
	}
	if strings.TrimSpace(s.Topic) == "" {
		s.Topic = All
	}
	if strings.TrimSpace(s.Tag) == "" {
		s.Tag = All
	}
	return s
}

func (s Selection) IsIdentity() bool {
	n := s.Normalize()
	return n.Category == All && n.Topic == All && n.Tag == All && strings.TrimSpace(n.Term) == ""
}

// Filter returns the cards matching every active facet, in input order.
func Filter(idx *catalog.Index, cards []catalog.Card, sel Selection) []catalog.Card {
	m := newMatcher(idx, sel)
	out := make([]catalog.Card, 0, len(cards))
	for _, card := range cards {
		if m.match(card) {
			out = append(out, card)
		}
	}
	return out
}

// Matches reports whether a single card satisfies sel.
func Matches(idx *catalog.Index, card catalog.Card, sel Selection) bool {
	return newMatcher(idx, sel).match(card)
}

type matcher struct {
	idx *catalog.Index
	sel Selection

	categoryID string
	topicID    string
	term       string
	impossible bool
}

func newMatcher(idx *catalog.Index, sel Selection) matcher {
	sel = sel.Normalize()
	m := matcher{idx: idx, sel: sel, term: strings.ToLower(strings.TrimSpace(sel.Term))}
	if sel.Category != All {
		category, ok := idx.CategoryBySlug(sel.Category)
		if !ok {
			m.impossible = true
		}
		m.categoryID = category.ID
	}
	if sel.Topic != All {
		topic, ok := idx.TopicBySlug(sel.Topic)
		if !ok {
			m.impossible = true
		}
		m.topicID = topic.ID
	}
	return m
}

func (m matcher) match(card catalog.Card) bool {
	if m.impossible {
		return false
	}
	if m.sel.Category != All || m.sel.Topic != All {
		topic, ok := m.idx.ParentTopic(card)
		if !ok {
			return false
		}
		if m.sel.Category != All && topic.CategoryID != m.categoryID {
			return false
		}
		if m.sel.Topic != All && topic.ID != m.topicID {
			return false
		}
	}
	if m.sel.Tag != All && !card.HasTag(m.sel.Tag) {
		return false
	}
	if m.term != "" && !strings.Contains(SearchableText(m.idx, card), m.term) {
		return false
	}
	return true
}

// SearchableText is the lowercased text a term is matched against: the
// card's own fields plus its subtopic, topic and category context.
func SearchableText(idx *catalog.Index, card catalog.Card) string {
	parts := []string{card.Question, card.Answer, card.Explanation, card.Reference, card.Subtitle}
	parts = append(parts, card.Tags...)

	lineage := idx.Lineage(card)
	if lineage.HasSubtopic {
		parts = append(parts, lineage.Subtopic.Title)
	}
	if lineage.HasTopic {
		parts = append(parts, lineage.Topic.Title, lineage.Topic.Summary)
		parts = append(parts, lineage.Topic.KeyPoints...)
		parts = append(parts, lineage.Topic.CoreTasks...)
	}
	if lineage.HasCategory {
		parts = append(parts, lineage.Category.Title, lineage.Category.Summary)
	}
	return strings.ToLower(strings.Join(parts, " "))
}
