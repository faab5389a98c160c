package domain

import "time"

// Snapshot is everything one successful load produced.
type Snapshot struct {
	Index      *Index
	Catalogue  Catalogue
	About      AboutPage
	Rejections []Rejection
	Source     string
	LoadedAt   time.Time
}

func (s Snapshot) Loaded() bool {
	return s.Index != nil
}
