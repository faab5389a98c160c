package dto

type SearchInput struct {
	Category string
	Topic    string
	Tag      string
	Term     string
	Limit    int
}

type CardOutput struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Subtitle    string   `json:"subtitle"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Reference   string   `json:"reference"`
	Tags        []string `json:"tags,omitempty"`
	TopicSlug   string   `json:"topic_slug"`
	TopicTitle  string   `json:"topic_title"`
	Subtopic    string   `json:"subtopic"`
	Category    string   `json:"category"`
	Orphan      bool     `json:"orphan"`
}

type TopicOptionOutput struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
