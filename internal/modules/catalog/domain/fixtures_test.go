package domain_test

import "refdeck/internal/modules/catalog/domain"

func threeLevelDoc() domain.Document {
	return domain.Document{
		Categories: []domain.Category{
			{ID: "c2", Slug: "procedure", Title: "Procedure", Summary: "Court and custody"},
			{ID: "c1", Slug: "crime", Title: "Crime", Summary: "Offences and defences"},
		},
		Topics: []domain.Topic{
			{ID: "t2", Slug: "theft-related", Title: "Theft and Related Offences", Summary: "Dishonesty", CategoryID: "c1", KeyPoints: []string{"Appropriation", "Property", "Belonging to another", "Intention"}},
			{ID: "t1", Slug: "mens-rea", Title: "Mens Rea", Summary: "State of mind", CategoryID: "c1"},
			{ID: "t3", Slug: "disclosure", Title: "Disclosure of Evidence", Summary: "CPIA duties", CategoryID: "c2", CoreTasks: []string{"Schedule unused material"}},
		},
		Cards: []domain.Card{
			{ID: "1", Question: "What is mens rea?", Answer: "The guilty mind", Tags: []string{"mens-rea"}, TopicID: "t1"},
			{ID: "2", Question: "Which defences apply?", Answer: "Duress and self-defence", Tags: []string{"defences"}, TopicID: "t2"},
			{ID: "3", Question: "Define appropriation", Answer: "Assuming the rights of an owner", Tags: []string{"defences", "Theft"}, TopicID: "t2"},
			{ID: "4", Question: "Orphaned question", Answer: "No parent", Tags: []string{"stray"}, TopicID: "missing"},
			{ID: "5", Question: "When must disclosure happen?", Answer: "As soon as reasonably practicable", TopicID: "t3"},
		},
	}
}

func twoLevelDoc() domain.Document {
	return domain.Document{
		Topics: []domain.Topic{
			{ID: "t1", Slug: "crime", Title: "Crime", Summary: "Crime volume"},
			{ID: "t2", Slug: "evidence-procedure", Title: "Evidence & Procedure", Summary: "Procedure volume"},
		},
		Subtopics: []domain.Subtopic{
			{ID: "s2", TopicID: "t1", Title: "Theft"},
			{ID: "s1", TopicID: "t1", Title: "Assault"},
			{ID: "s3", TopicID: "t2", Title: "Disclosure"},
		},
		Cards: []domain.Card{
			{ID: "1", Question: "Theft?", Answer: "Dishonest appropriation", Tags: []string{"theft"}, SubtopicID: "s2"},
			{ID: "2", Question: "Assault?", Answer: "Apprehension of force", Tags: []string{"assault"}, SubtopicID: "s1"},
			{ID: "3", Question: "Disclosure?", Answer: "Unused material", SubtopicID: "s3"},
			{ID: "4", Question: "Lost?", Answer: "No subtopic", SubtopicID: "nope"},
		},
	}
}
