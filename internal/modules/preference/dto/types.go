package dto

type ThemeOutput struct {
	Theme  string `json:"theme"`
	Stored bool   `json:"stored"`
}
