package domain

import catalog "refdeck/internal/modules/catalog/domain"

// TopicOptions lists the topics offered by the topic selector once the
// category selector is set. All or an empty slug offers every topic.
func TopicOptions(idx *catalog.Index, categorySlug string) []catalog.Topic {
	if categorySlug == "" || categorySlug == All {
		return idx.Topics()
	}
	category, ok := idx.CategoryBySlug(categorySlug)
	if !ok {
		return []catalog.Topic{}
	}
	return idx.TopicsOf(category.ID)
}

// Narrow resets the topic facet to All when it no longer belongs to the
// topics offered for the selected category.
func Narrow(idx *catalog.Index, sel Selection) Selection {
	sel = sel.Normalize()
	if sel.Topic == All {
		return sel
	}
	for _, topic := range TopicOptions(idx, sel.Category) {
		if topic.Slug == sel.Topic {
			return sel
		}
	}
	sel.Topic = All
	return sel
}
