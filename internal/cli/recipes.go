package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"foodieframe_client/internal/model"
)

func (c *CLI) recipes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: recipes list|show|mine|create|update|delete")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return c.recipeList(ctx)
	case "show":
		return c.recipeShow(ctx, rest)
	case "mine":
		return c.recipeMine(ctx)
	case "create":
		return c.recipeCreate(ctx, rest)
	case "update":
		return c.recipeUpdate(ctx, rest)
	case "delete":
		return c.recipeDelete(ctx, rest)
	default:
		return fmt.Errorf("unknown recipes command %q", sub)
	}
}

func (c *CLI) recipeList(ctx context.Context) error {
	recipes, err := c.App.Recipes().List(ctx)
	if err != nil {
		return err
	}
	c.printRecipes(recipes)
	return nil
}

func (c *CLI) recipeMine(ctx context.Context) error {
	recipes, err := c.App.Recipes().Mine(ctx)
	if err != nil {
		return err
	}
	c.printRecipes(recipes)
	return nil
}

func (c *CLI) printRecipes(recipes []model.Recipe) {
	w := c.table()
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tOWNER")
	for _, r := range recipes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", r.ID, r.Title, r.Category, r.UserID)
	}
	w.Flush()
}

func (c *CLI) recipeShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: recipes show <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	recipe, err := c.App.Recipes().Get(ctx, id)
	if err != nil {
		return err
	}
	state, err := c.App.Interactions().Load(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.Out, "%s (id %d)\n", recipe.Title, recipe.ID)
	fmt.Fprintf(c.Out, "Category: %s\n", recipe.Category)
	fmt.Fprintf(c.Out, "Likes: %d  Liked: %t  Saved: %t\n",
		state.LikeCount, state.Liked, state.Saved)
	fmt.Fprintf(c.Out, "\n%s\n", recipe.Description)
	if steps := recipe.StepList(); len(steps) > 0 {
		fmt.Fprintln(c.Out, "\nSteps:")
		for n, step := range steps {
			fmt.Fprintf(c.Out, "  %d. %s\n", n+1, step)
		}
	}
	if tags := recipe.TagList(); len(tags) > 0 {
		fmt.Fprintf(c.Out, "\nTags: %s\n", strings.Join(tags, ", "))
	}
	return nil
}

func recipeFlags(fs *flag.FlagSet) (title, description, category, steps, tags, image, video *string) {
	title = fs.String("title", "", "recipe title")
	description = fs.String("desc", "", "description (min 10 characters)")
	category = fs.String("category", "", "category name")
	steps = fs.String("steps", "", "newline-delimited steps")
	tags = fs.String("tags", "", "comma-separated tags")
	image = fs.String("image", "", "image file to upload")
	video = fs.String("video", "", "video file to upload")
	return
}

func (c *CLI) recipeCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("recipes create", flag.ContinueOnError)
	title, description, category, steps, tags, image, video := recipeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	recipe := model.Recipe{
		Title:       *title,
		Description: *description,
		Category:    *category,
		Steps:       *steps,
		Tags:        *tags,
	}

	var created model.Recipe
	var err error
	if *image != "" || *video != "" {
		created, err = c.App.Recipes().CreateWithMedia(ctx, recipe, *image, *video)
	} else {
		created, err = c.App.Recipes().Create(ctx, recipe)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Created recipe %d: %s\n", created.ID, created.Title)
	return nil
}

func (c *CLI) recipeUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: recipes update <id> [flags]")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("recipes update", flag.ContinueOnError)
	title, description, category, steps, tags, _, _ := recipeFlags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	existing, err := c.App.Recipes().Get(ctx, id)
	if err != nil {
		return err
	}
	if *title != "" {
		existing.Title = *title
	}
	if *description != "" {
		existing.Description = *description
	}
	if *category != "" {
		existing.Category = *category
	}
	if *steps != "" {
		existing.Steps = *steps
	}
	if *tags != "" {
		existing.Tags = *tags
	}

	updated, err := c.App.Recipes().Update(ctx, id, existing)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Updated recipe %d\n", updated.ID)
	return nil
}

func (c *CLI) recipeDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: recipes delete <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := c.App.Recipes().Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Deleted recipe %d\n", id)
	return nil
}

func (c *CLI) like(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: like <recipe-id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if _, err := c.App.Interactions().Load(ctx, id); err != nil {
		return err
	}
	state, err := c.App.Interactions().ToggleLike(ctx, id)
	if err != nil {
		return err
	}
	if state.Liked {
		fmt.Fprintf(c.Out, "Liked recipe %d (%d likes)\n", id, state.LikeCount)
	} else {
		fmt.Fprintf(c.Out, "Unliked recipe %d (%d likes)\n", id, state.LikeCount)
	}
	return nil
}

func (c *CLI) save(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	note := fs.String("note", "", "personal note stored with the bookmark")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: save <recipe-id> [-note text]")
	}
	id, err := parseID(fs.Arg(0))
	if err != nil {
		return err
	}

	if _, err := c.App.Interactions().Load(ctx, id); err != nil {
		return err
	}
	state, err := c.App.Interactions().ToggleSave(ctx, id, *note)
	if err != nil {
		return err
	}
	if state.Saved {
		fmt.Fprintf(c.Out, "Saved recipe %d\n", id)
	} else {
		fmt.Fprintf(c.Out, "Removed recipe %d from saved\n", id)
	}
	return nil
}

func (c *CLI) savedList(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		details, err := c.App.Saved().List(ctx)
		if err != nil {
			return err
		}
		w := c.table()
		fmt.Fprintln(w, "RECIPE\tTITLE\tNOTE")
		for _, d := range details {
			fmt.Fprintf(w, "%d\t%s\t%s\n", d.Saved.PostID, d.Recipe.Title, d.Saved.Note)
		}
		return w.Flush()
	case "note":
		if len(args) < 2 {
			return fmt.Errorf("usage: saved note <recipe-id> <text>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if _, err := c.App.Saved().UpdateNote(ctx, id, strings.Join(args[1:], " ")); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Note updated for recipe %d\n", id)
		return nil
	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("usage: saved remove <recipe-id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := c.App.Saved().Remove(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Removed recipe %d from saved\n", id)
		return nil
	default:
		return fmt.Errorf("unknown saved command %q", sub)
	}
}

func (c *CLI) comments(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: comments list|add|edit|delete")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		if len(rest) != 1 {
			return fmt.Errorf("usage: comments list <recipe-id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		comments, err := c.App.Interactions().Comments(ctx, id)
		if err != nil {
			return err
		}
		w := c.table()
		fmt.Fprintln(w, "ID\tUSER\tCONTENT")
		for _, cm := range comments {
			fmt.Fprintf(w, "%d\t%d\t%s\n", cm.ID, cm.UserID, cm.Content)
		}
		return w.Flush()
	case "add":
		if len(rest) < 2 {
			return fmt.Errorf("usage: comments add <recipe-id> <text>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		comment, err := c.App.Interactions().AddComment(ctx, id, strings.Join(rest[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Comment %d added\n", comment.ID)
		return nil
	case "edit":
		if len(rest) < 2 {
			return fmt.Errorf("usage: comments edit <comment-id> <text>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		if _, err := c.App.Interactions().EditComment(ctx, id, strings.Join(rest[1:], " ")); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Comment %d updated\n", id)
		return nil
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: comments delete <comment-id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		if err := c.App.Interactions().DeleteComment(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Comment %d deleted\n", id)
		return nil
	default:
		return fmt.Errorf("unknown comments command %q", sub)
	}
}
