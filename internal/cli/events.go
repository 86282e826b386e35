package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"foodieframe_client/internal/model"
)

func (c *CLI) events(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: events list|show|search|create|update|delete|comments|comment")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		events, err := c.App.Events().List(ctx)
		if err != nil {
			return err
		}
		c.printEvents(events)
		return nil
	case "show":
		if len(rest) != 1 {
			return fmt.Errorf("usage: events show <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		event, err := c.App.Events().Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "%s (id %d)\n", event.Title, event.ID)
		fmt.Fprintf(c.Out, "When: %s %s\nWhere: %s\n\n%s\n",
			event.Date, event.Time, event.Location, event.Description)
		return nil
	case "search":
		if len(rest) == 0 {
			return fmt.Errorf("usage: events search <query>")
		}
		events, err := c.App.Events().Search(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		c.printEvents(events)
		return nil
	case "create":
		return c.eventCreate(ctx, rest)
	case "update":
		return c.eventUpdate(ctx, rest)
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: events delete <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		if err := c.App.Events().Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Deleted event %d\n", id)
		return nil
	case "comments":
		if len(rest) != 1 {
			return fmt.Errorf("usage: events comments <id>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		comments, err := c.App.Events().Comments(ctx, id)
		if err != nil {
			return err
		}
		w := c.table()
		fmt.Fprintln(w, "ID\tUSER\tCONTENT")
		for _, cm := range comments {
			fmt.Fprintf(w, "%d\t%d\t%s\n", cm.ID, cm.UserID, cm.Content)
		}
		return w.Flush()
	case "comment":
		if len(rest) < 2 {
			return fmt.Errorf("usage: events comment <id> <text>")
		}
		id, err := parseID(rest[0])
		if err != nil {
			return err
		}
		comment, err := c.App.Events().AddComment(ctx, id, strings.Join(rest[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Comment %d added\n", comment.ID)
		return nil
	default:
		return fmt.Errorf("unknown events command %q", sub)
	}
}

func (c *CLI) printEvents(events []model.Event) {
	w := c.table()
	fmt.Fprintln(w, "ID\tTITLE\tDATE\tTIME\tLOCATION")
	for _, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Title, e.Date, e.Time, e.Location)
	}
	w.Flush()
}

func eventFlags(fs *flag.FlagSet) (title, description, date, timeOfDay, location, image *string) {
	title = fs.String("title", "", "event title")
	description = fs.String("desc", "", "event description")
	date = fs.String("date", "", "event date")
	timeOfDay = fs.String("time", "", "event time")
	location = fs.String("location", "", "event location")
	image = fs.String("image", "", "image file to upload")
	return
}

func (c *CLI) eventCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("events create", flag.ContinueOnError)
	title, description, date, timeOfDay, location, image := eventFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	event := model.Event{
		Title:       *title,
		Description: *description,
		Date:        *date,
		Time:        *timeOfDay,
		Location:    *location,
	}
	created, err := c.App.Events().Create(ctx, event, *image)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Created event %d: %s\n", created.ID, created.Title)
	return nil
}

func (c *CLI) eventUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: events update <id> [flags]")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("events update", flag.ContinueOnError)
	title, description, date, timeOfDay, location, _ := eventFlags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	existing, err := c.App.Events().Get(ctx, id)
	if err != nil {
		return err
	}
	if *title != "" {
		existing.Title = *title
	}
	if *description != "" {
		existing.Description = *description
	}
	if *date != "" {
		existing.Date = *date
	}
	if *timeOfDay != "" {
		existing.Time = *timeOfDay
	}
	if *location != "" {
		existing.Location = *location
	}

	updated, err := c.App.Events().Update(ctx, id, existing)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Updated event %d\n", updated.ID)
	return nil
}
