package domain

import (
	"fmt"
	"strings"
)

// Variant is the depth of a content set. It is derived from the document,
// never configured.
type Variant string

const (
	VariantTwoLevel   Variant = "two-level"
	VariantThreeLevel Variant = "three-level"
)

type RecordKind string

const (
	KindCategory RecordKind = "category"
	KindTopic    RecordKind = "topic"
	KindSubtopic RecordKind = "subtopic"
	KindCard     RecordKind = "card"
)

type Category struct {
	ID      string
	Slug    string
	Title   string
	Summary string
}

type Topic struct {
	ID         string
	Slug       string
	Title      string
	Summary    string
	KeyPoints  []string
	CoreTasks  []string
	Resources  []string
	CategoryID string
}

type Subtopic struct {
	ID      string
	TopicID string
	Title   string
}

// Card is a study card. Its parent is SubtopicID in two-level content and
// TopicID in three-level content.
type Card struct {
	ID          string
	Question    string
	Subtitle    string
	Answer      string
	Explanation string
	Reference   string
	Tags        []string
	TopicID     string
	SubtopicID  string
}

// Document holds the records of one content set in source order.
type Document struct {
	Categories []Category
	Topics     []Topic
	Subtopics  []Subtopic
	Cards      []Card
}

// Rejection describes a record dropped while loading or indexing.
type Rejection struct {
	Kind   RecordKind
	ID     string
	Reason string
}

func (r Rejection) String() string {
	return fmt.Sprintf("%s %q: %s", r.Kind, r.ID, r.Reason)
}

func (d Document) Variant() Variant {
	if len(d.Subtopics) > 0 {
		return VariantTwoLevel
	}
	return VariantThreeLevel
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(c.Slug) == "" {
		return fmt.Errorf("slug is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

func (t Topic) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(t.Slug) == "" {
		return fmt.Errorf("slug is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

func (s Subtopic) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(s.TopicID) == "" {
		return fmt.Errorf("topic_id is required")
	}
	return nil
}

func (c Card) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(c.Question) == "" {
		return fmt.Errorf("question is required")
	}
	if strings.TrimSpace(c.Answer) == "" {
		return fmt.Errorf("answer is required")
	}
	if strings.TrimSpace(c.TopicID) == "" && strings.TrimSpace(c.SubtopicID) == "" {
		return fmt.Errorf("topic_id or subtopic_id is required")
	}
	return nil
}

// HasTag is an exact, case-sensitive membership test.
func (c Card) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
