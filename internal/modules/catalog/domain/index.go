package domain

import (
	"slices"

	"refdeck/internal/platform/order"
)

// Index is the read-only lookup and grouping structure over one content set.
// It is rebuilt from scratch on every load and never mutated afterwards.
type Index struct {
	variant Variant

	categories     map[string]Category
	categoryBySlug map[string]Category
	topics         map[string]Topic
	topicBySlug    map[string]Topic
	subtopics      map[string]Subtopic
	cards          map[string]Card

	categoryList     []Category
	topicList        []Topic
	topicsByCategory map[string][]Topic
	subtopicsByTopic map[string][]Subtopic
	cardsByTopic     map[string][]Card
	cardsBySubtopic  map[string][]Card
	cardsByCategory  map[string][]Card

	cardSeq []Card
	tags    []string
}

// Build indexes doc. Records failing validation, duplicate ids within an
// entity type and duplicate slugs within Category or Topic are rejected; the
// first occurrence wins. Orphan cards stay in Cards but join no grouping.
func Build(doc Document) (*Index, []Rejection) {
	idx := &Index{
		variant:          doc.Variant(),
		categories:       map[string]Category{},
		categoryBySlug:   map[string]Category{},
		topics:           map[string]Topic{},
		topicBySlug:      map[string]Topic{},
		subtopics:        map[string]Subtopic{},
		cards:            map[string]Card{},
		topicsByCategory: map[string][]Topic{},
		subtopicsByTopic: map[string][]Subtopic{},
		cardsByTopic:     map[string][]Card{},
		cardsBySubtopic:  map[string][]Card{},
		cardsByCategory:  map[string][]Card{},
	}
	rejected := []Rejection{}
	reject := func(kind RecordKind, id, reason string) {
		rejected = append(rejected, Rejection{Kind: kind, ID: id, Reason: reason})
	}

	for _, category := range doc.Categories {
		if err := category.Validate(); err != nil {
			reject(KindCategory, category.ID, err.Error())
			continue
		}
		if _, ok := idx.categories[category.ID]; ok {
			reject(KindCategory, category.ID, "duplicate id")
			continue
		}
		if _, ok := idx.categoryBySlug[category.Slug]; ok {
			reject(KindCategory, category.ID, "duplicate slug "+category.Slug)
			continue
		}
		idx.categories[category.ID] = category
		idx.categoryBySlug[category.Slug] = category
		idx.categoryList = append(idx.categoryList, category)
	}

	for _, topic := range doc.Topics {
		if err := topic.Validate(); err != nil {
			reject(KindTopic, topic.ID, err.Error())
			continue
		}
		if _, ok := idx.topics[topic.ID]; ok {
			reject(KindTopic, topic.ID, "duplicate id")
			continue
		}
		if _, ok := idx.topicBySlug[topic.Slug]; ok {
			reject(KindTopic, topic.ID, "duplicate slug "+topic.Slug)
			continue
		}
		idx.topics[topic.ID] = topic
		idx.topicBySlug[topic.Slug] = topic
		idx.topicList = append(idx.topicList, topic)
		if _, ok := idx.categories[topic.CategoryID]; ok {
			idx.topicsByCategory[topic.CategoryID] = append(idx.topicsByCategory[topic.CategoryID], topic)
		}
	}

	for _, subtopic := range doc.Subtopics {
		if err := subtopic.Validate(); err != nil {
			reject(KindSubtopic, subtopic.ID, err.Error())
			continue
		}
		if _, ok := idx.subtopics[subtopic.ID]; ok {
			reject(KindSubtopic, subtopic.ID, "duplicate id")
			continue
		}
		idx.subtopics[subtopic.ID] = subtopic
		if _, ok := idx.topics[subtopic.TopicID]; ok {
			idx.subtopicsByTopic[subtopic.TopicID] = append(idx.subtopicsByTopic[subtopic.TopicID], subtopic)
		}
	}

	tagSet := map[string]struct{}{}
	for _, card := range doc.Cards {
		if err := card.Validate(); err != nil {
			reject(KindCard, card.ID, err.Error())
			continue
		}
		if _, ok := idx.cards[card.ID]; ok {
			reject(KindCard, card.ID, "duplicate id")
			continue
		}
		idx.cards[card.ID] = card
		idx.cardSeq = append(idx.cardSeq, card)
		for _, tag := range card.Tags {
			if tag != "" {
				tagSet[tag] = struct{}{}
			}
		}

		if subtopic, ok := idx.ParentSubtopic(card); ok {
			idx.cardsBySubtopic[subtopic.ID] = append(idx.cardsBySubtopic[subtopic.ID], card)
		}
		topic, ok := idx.ParentTopic(card)
		if !ok {
			continue
		}
		idx.cardsByTopic[topic.ID] = append(idx.cardsByTopic[topic.ID], card)
		if category, ok := idx.categories[topic.CategoryID]; ok {
			idx.cardsByCategory[category.ID] = append(idx.cardsByCategory[category.ID], card)
		}
	}

	categoryTitle := func(c Category) string { return c.Title }
	topicTitle := func(t Topic) string { return t.Title }
	subtopicTitle := func(s Subtopic) string { return s.Title }
	cardTitle := func(c Card) string { return c.Question }

	order.ByTitle(idx.categoryList, categoryTitle)
	order.ByTitle(idx.topicList, topicTitle)
	for _, list := range idx.topicsByCategory {
		order.ByTitle(list, topicTitle)
	}
	for _, list := range idx.subtopicsByTopic {
		order.ByTitle(list, subtopicTitle)
	}
	for _, group := range []map[string][]Card{idx.cardsByTopic, idx.cardsBySubtopic, idx.cardsByCategory} {
		for _, list := range group {
			order.ByTitle(list, cardTitle)
		}
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	idx.tags = order.Strings(tags)

	return idx, rejected
}

func (i *Index) Variant() Variant {
	return i.variant
}

func (i *Index) Category(id string) (Category, bool) {
	c, ok := i.categories[id]
	return c, ok
}

func (i *Index) CategoryBySlug(slug string) (Category, bool) {
	c, ok := i.categoryBySlug[slug]
	return c, ok
}

func (i *Index) Topic(id string) (Topic, bool) {
	t, ok := i.topics[id]
	return t, ok
}

func (i *Index) TopicBySlug(slug string) (Topic, bool) {
	t, ok := i.topicBySlug[slug]
	return t, ok
}

func (i *Index) Subtopic(id string) (Subtopic, bool) {
	s, ok := i.subtopics[id]
	return s, ok
}

func (i *Index) Card(id string) (Card, bool) {
	c, ok := i.cards[id]
	return c, ok
}

// Categories returns every category in title order.
func (i *Index) Categories() []Category {
	return slices.Clone(i.categoryList)
}

// Topics returns every topic in title order.
func (i *Index) Topics() []Topic {
	return slices.Clone(i.topicList)
}

func (i *Index) TopicsOf(categoryID string) []Topic {
	return slices.Clone(i.topicsByCategory[categoryID])
}

func (i *Index) SubtopicsOf(topicID string) []Subtopic {
	return slices.Clone(i.subtopicsByTopic[topicID])
}

// CardsOfTopic includes cards reached through the topic's subtopics.
func (i *Index) CardsOfTopic(topicID string) []Card {
	return slices.Clone(i.cardsByTopic[topicID])
}

func (i *Index) CardsOfSubtopic(subtopicID string) []Card {
	return slices.Clone(i.cardsBySubtopic[subtopicID])
}

func (i *Index) CardsOfCategory(categoryID string) []Card {
	return slices.Clone(i.cardsByCategory[categoryID])
}

// Cards returns every indexed card in source order, orphans included.
func (i *Index) Cards() []Card {
	return slices.Clone(i.cardSeq)
}

// Tags is the sorted union of every card's tags.
func (i *Index) Tags() []string {
	return slices.Clone(i.tags)
}

func (i *Index) ParentSubtopic(card Card) (Subtopic, bool) {
	if card.SubtopicID == "" {
		return Subtopic{}, false
	}
	s, ok := i.subtopics[card.SubtopicID]
	return s, ok
}

// ParentTopic resolves the card's topic directly or through its subtopic.
func (i *Index) ParentTopic(card Card) (Topic, bool) {
	if card.SubtopicID != "" {
		subtopic, ok := i.subtopics[card.SubtopicID]
		if !ok {
			return Topic{}, false
		}
		t, ok := i.topics[subtopic.TopicID]
		return t, ok
	}
	t, ok := i.topics[card.TopicID]
	return t, ok
}

func (i *Index) ParentCategory(card Card) (Category, bool) {
	topic, ok := i.ParentTopic(card)
	if !ok {
		return Category{}, false
	}
	c, ok := i.categories[topic.CategoryID]
	return c, ok
}

// IsOrphan reports whether the card's parent reference does not resolve.
func (i *Index) IsOrphan(card Card) bool {
	if card.SubtopicID != "" {
		_, ok := i.subtopics[card.SubtopicID]
		return !ok
	}
	_, ok := i.topics[card.TopicID]
	return !ok
}

func (i *Index) Counts() Counts {
	orphans := 0
	for _, card := range i.cardSeq {
		if i.IsOrphan(card) {
			orphans++
		}
	}
	return Counts{
		Categories: len(i.categories),
		Topics:     len(i.topics),
		Subtopics:  len(i.subtopics),
		Cards:      len(i.cards),
		Orphans:    orphans,
		Tags:       len(i.tags),
	}
}

type Counts struct {
	Categories int
	Topics     int
	Subtopics  int
	Cards      int
	Orphans    int
	Tags       int
}

// Lineage is the resolved ancestry of one card. Missing links are left zero.
type Lineage struct {
	Category    Category
	Topic       Topic
	Subtopic    Subtopic
	HasCategory bool
	HasTopic    bool
	HasSubtopic bool
}

func (i *Index) Lineage(card Card) Lineage {
	l := Lineage{}
	l.Subtopic, l.HasSubtopic = i.ParentSubtopic(card)
	l.Topic, l.HasTopic = i.ParentTopic(card)
	if l.HasTopic {
		l.Category, l.HasCategory = i.categories[l.Topic.CategoryID]
	}
	return l
}
