package model

import (
	"encoding/json"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Recipe is a shared recipe post. Steps is newline-delimited text and Tags is
// comma-separated text; the backend stores both as flat strings.
type Recipe struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category,omitempty"`
	Image       string     `json:"image,omitempty"`
	Video       string     `json:"video,omitempty"`
	Steps       string     `json:"steps,omitempty"`
	Tags        string     `json:"tags,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
}

// recipeWire mirrors Recipe but carries every field-name casing the backend
// has been observed to emit (userId vs userID, image vs Image). Decoding goes
// through it so the rest of the client only ever sees the canonical names.
type recipeWire struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	UserIDUpper  *int64     `json:"userID"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Image        string     `json:"image"`
	ImageUpper   *string    `json:"Image"`
	Video        string     `json:"video"`
	Steps        string     `json:"steps"`
	Tags         string     `json:"tags"`
	Difficulty   Difficulty `json:"difficulty"`
}

func (r *Recipe) UnmarshalJSON(data []byte) error {
	var w recipeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Recipe{
		ID:          w.ID,
		UserID:      w.UserID,
		Title:       w.Title,
		Description: w.Description,
		Category:    w.Category,
		Image:       w.Image,
		Video:       w.Video,
		Steps:       w.Steps,
		Tags:        w.Tags,
		Difficulty:  w.Difficulty,
	}
	if r.UserID == 0 && w.UserIDUpper != nil {
		r.UserID = *w.UserIDUpper
	}
	if r.Image == "" && w.ImageUpper != nil {
		r.Image = *w.ImageUpper
	}
	return nil
}

// StepList splits the delimited steps text into individual steps.
func (r Recipe) StepList() []string {
	return splitNonEmpty(r.Steps, "\n")
}

// TagList splits the comma-separated tags text into individual tags.
func (r Recipe) TagList() []string {
	return splitNonEmpty(r.Tags, ",")
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
