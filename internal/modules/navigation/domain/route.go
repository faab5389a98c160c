package domain

import "strings"

type Kind int

const (
	KindHome Kind = iota
	KindBrowse
	KindTopic
	KindCategory
	KindAbout
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindBrowse:
		return "browse"
	case KindTopic:
		return "topic"
	case KindCategory:
		return "category"
	case KindAbout:
		return "about"
	default:
		return "notfound"
	}
}

// Route is a parsed navigation fragment. Slug is set for Topic and Category
// routes only and is not checked against the content.
type Route struct {
	Kind Kind
	Slug string
}

var (
	Home     = Route{Kind: KindHome}
	Browse   = Route{Kind: KindBrowse}
	About    = Route{Kind: KindAbout}
	NotFound = Route{Kind: KindNotFound}
)

func Topic(slug string) Route {
	return Route{Kind: KindTopic, Slug: slug}
}

func Category(slug string) Route {
	return Route{Kind: KindCategory, Slug: slug}
}

const (
	topicPrefix    = "topic/"
	categoryPrefix = "category/"
)

// Parse maps a fragment to a route. The leading "#" is optional.
func Parse(fragment string) Route {
	f := strings.TrimPrefix(fragment, "#")
	switch {
	case f == "" || f == "home":
		return Home
	case f == "browse":
		return Browse
	case f == "about":
		return About
	case strings.HasPrefix(f, topicPrefix):
		if slug := strings.TrimPrefix(f, topicPrefix); slug != "" {
			return Topic(slug)
		}
	case strings.HasPrefix(f, categoryPrefix):
		if slug := strings.TrimPrefix(f, categoryPrefix); slug != "" {
			return Category(slug)
		}
	}
	return NotFound
}

// Format is the inverse of Parse for every route except NotFound.
func Format(r Route) string {
	switch r.Kind {
	case KindHome:
		return "#home"
	case KindBrowse:
		return "#browse"
	case KindTopic:
		return "#" + topicPrefix + r.Slug
	case KindCategory:
		return "#" + categoryPrefix + r.Slug
	case KindAbout:
		return "#about"
	default:
		return "#notfound"
	}
}

func (r Route) String() string {
	return Format(r)
}
