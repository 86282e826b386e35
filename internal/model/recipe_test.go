package model

import (
	"encoding/json"
	"testing"
)

func TestRecipeDecodeCanonical(t *testing.T) {
	raw := `{"id":1,"userId":5,"title":"Ramen","description":"Rich broth","image":"ramen.jpg"}`
	var r Recipe
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.UserID != 5 || r.Image != "ramen.jpg" {
		t.Fatalf("unexpected recipe: %+v", r)
	}
}

func TestRecipeDecodeDriftedCasing(t *testing.T) {
	// Older backend responses used userID and Image.
	raw := `{"id":2,"userID":8,"title":"Stew","description":"Slow cooked","Image":"stew.jpg"}`
	var r Recipe
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.UserID != 8 {
		t.Fatalf("expected userID variant to map, got %d", r.UserID)
	}
	if r.Image != "stew.jpg" {
		t.Fatalf("expected Image variant to map, got %q", r.Image)
	}
}

func TestRecipeStepAndTagLists(t *testing.T) {
	r := Recipe{
		Steps: "chop onions\n\n  simmer  \n",
		Tags:  "comfort, winter,,stew ",
	}
	steps := r.StepList()
	if len(steps) != 2 || steps[0] != "chop onions" || steps[1] != "simmer" {
		t.Fatalf("unexpected steps: %v", steps)
	}
	tags := r.TagList()
	if len(tags) != 3 || tags[2] != "stew" {
		t.Fatalf("unexpected tags: %v", tags)
	}

	if got := (Recipe{}).StepList(); len(got) != 0 {
		t.Fatalf("empty steps must yield no entries, got %v", got)
	}
}

func TestInteractionDecodeTypeKeys(t *testing.T) {
	var short Interaction
	if err := json.Unmarshal([]byte(`{"id":1,"userId":2,"recipeId":3,"type":"LIKE"}`), &short); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if short.Type != InteractionLike {
		t.Fatalf("expected LIKE, got %q", short.Type)
	}

	var long Interaction
	if err := json.Unmarshal([]byte(`{"id":1,"userId":2,"recipeId":3,"interactionType":"COMMENT","content":"tasty"}`), &long); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if long.Type != InteractionComment || long.Content != "tasty" {
		t.Fatalf("expected interactionType variant to map, got %+v", long)
	}
}

func TestFriendshipOtherUser(t *testing.T) {
	f := Friendship{UserID: 10, FriendID: 20}
	if f.OtherUser(10) != 20 {
		t.Fatalf("expected counterpart 20")
	}
	if f.OtherUser(20) != 10 {
		t.Fatalf("expected counterpart 10")
	}
}
