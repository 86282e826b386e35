package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"foodieframe_client/internal/app"
)

// CLI dispatches subcommands against a wired App. Out is swapped for a
// buffer in tests.
type CLI struct {
	App *app.App
	Out io.Writer
}

func New(application *app.App) *CLI {
	return &CLI{App: application, Out: os.Stdout}
}

// Run executes one command: the first argument names the topic, the rest are
// the topic's own arguments.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.usage()
		return fmt.Errorf("no command given")
	}

	topic, rest := args[0], args[1:]
	switch topic {
	case "login":
		return c.login(ctx, rest)
	case "register":
		return c.register(ctx, rest)
	case "logout":
		return c.logout()
	case "whoami":
		return c.whoami()
	case "profile":
		return c.profile(ctx, rest)
	case "recipes":
		return c.recipes(ctx, rest)
	case "like":
		return c.like(ctx, rest)
	case "save":
		return c.save(ctx, rest)
	case "saved":
		return c.savedList(ctx, rest)
	case "comments":
		return c.comments(ctx, rest)
	case "events":
		return c.events(ctx, rest)
	case "friends":
		return c.friends(ctx, rest)
	case "groups":
		return c.groups(ctx, rest)
	case "categories":
		return c.categories(ctx, rest)
	case "media":
		return c.media(ctx, rest)
	case "status":
		return c.uploadStatus(ctx)
	case "help":
		c.usage()
		return nil
	default:
		c.usage()
		return fmt.Errorf("unknown command %q", topic)
	}
}

func (c *CLI) usage() {
	fmt.Fprint(c.Out, `foodieframe <command> [arguments]

Commands:
  login -u <user> -p <pass>     authenticate and store the session
  register                      create an account (log in separately)
  logout                        drop the stored session
  whoami                        show the logged-in user
  profile update                edit the logged-in user's profile
  recipes list|show|mine|create|update|delete
  like <recipe-id>              toggle a like
  save <recipe-id> [-note ...]  toggle a bookmark
  saved [list|note|remove]      manage bookmarks
  comments list|add|edit|delete recipe comments
  events list|show|search|create|update|delete|comments|comment
  friends list|pending|sent|request|accept|reject|remove|block|unblock|blocked|search
  groups list|public|show|search|mine|create|members|join|leave|role
  categories list|search|show
  media analyze|thumbnail       inspect files before upload
  status                        backend upload subsystem status
`)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected a numeric id, got %q", arg)
	}
	return id, nil
}

// table returns a writer that aligns columns; callers must Flush.
func (c *CLI) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.Out, 0, 4, 2, ' ', 0)
}
