package model

import "encoding/json"

type InteractionType string

const (
	InteractionLike     InteractionType = "LIKE"
	InteractionFavorite InteractionType = "FAVORITE"
	InteractionComment  InteractionType = "COMMENT"
)

// Interaction is a typed user action against a recipe. LIKE and FAVORITE are
// unique per (user, recipe); COMMENT may repeat and carries Content.
type Interaction struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	RecipeID  int64           `json:"recipeId"`
	Type      InteractionType `json:"type"`
	Content   string          `json:"content,omitempty"`
	CreatedAt string          `json:"createdAt,omitempty"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
}

// interactionWire accepts both the "type" and "interactionType" key the
// backend has emitted across revisions.
type interactionWire struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"userId"`
	RecipeID  int64            `json:"recipeId"`
	Type      InteractionType  `json:"type"`
	LongType  *InteractionType `json:"interactionType"`
	Content   string           `json:"content"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

func (i *Interaction) UnmarshalJSON(data []byte) error {
	var w interactionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*i = Interaction{
		ID:        w.ID,
		UserID:    w.UserID,
		RecipeID:  w.RecipeID,
		Type:      w.Type,
		Content:   w.Content,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if i.Type == "" && w.LongType != nil {
		i.Type = *w.LongType
	}
	return nil
}

// SavedRecipe is the dedicated saved-recipe record, the successor of the
// FAVORITE interaction for bookmarking.
type SavedRecipe struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	PostID    int64  `json:"postId"`
	Note      string `json:"note,omitempty"`
	SavedDate string `json:"savedDate,omitempty"`
}
