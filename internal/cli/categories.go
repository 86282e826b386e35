package cli

import (
	"context"
	"fmt"
	"strings"

	"foodieframe_client/internal/model"
)

func (c *CLI) categories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: categories list|show|search")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		categories, err := c.App.Categories().List(ctx)
		if err != nil {
			return err
		}
		c.printCategories(categories)
		return nil
	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("usage: categories show <id|name>")
		}
		var category model.Category
		if id, err := parseID(rest[0]); err == nil {
			category, err = c.App.Categories().Get(ctx, id)
			if err != nil {
				return err
			}
		} else {
			var nameErr error
			category, nameErr = c.App.Categories().ByName(ctx, rest[0])
			if nameErr != nil {
				return nameErr
			}
		}
		fmt.Fprintf(c.Out, "%s (id %d)\n%s\n", category.Name, category.ID, category.Description)
		return nil
	case "search":
		if len(rest) == 0 {
			return fmt.Errorf("usage: categories search <query>")
		}
		categories, err := c.App.Categories().Search(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		c.printCategories(categories)
		return nil
	default:
		return fmt.Errorf("unknown categories command %q", sub)
	}
}

func (c *CLI) printCategories(categories []model.Category) {
	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, cat := range categories {
		fmt.Fprintf(w, "%d\t%s\t%s\n", cat.ID, cat.Name, cat.Description)
	}
	w.Flush()
}
