package dto

// RouteOutput is the resolved view for one fragment, flattened for printing.
type RouteOutput struct {
	Fragment string          `json:"fragment"`
	Route    string          `json:"route"`
	View     string          `json:"view"`
	Title    string          `json:"title"`
	Summary  string          `json:"summary"`
	Message  string          `json:"message"`
	Chapters []string        `json:"chapters,omitempty"`
	Sections []SectionOutput `json:"sections,omitempty"`
	Cards    []CardOutput    `json:"cards,omitempty"`
}

// SectionOutput is one group of links on a directory page.
type SectionOutput struct {
	Title string       `json:"title"`
	Links []LinkOutput `json:"links,omitempty"`
}

type LinkOutput struct {
	Fragment  string `json:"fragment"`
	Title     string `json:"title"`
	CardCount int    `json:"card_count"`
}

type CardOutput struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Topic    string `json:"topic"`
	Subtopic string `json:"subtopic"`
}
