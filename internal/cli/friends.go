package cli

import (
	"context"
	"fmt"
	"strings"

	"foodieframe_client/internal/service"
)

func (c *CLI) friends(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: friends list|pending|sent|request|accept|reject|remove|block|unblock|blocked|search")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		details, err := c.App.Friends().Friends(ctx)
		if err != nil {
			return err
		}
		c.printFriends(details)
		return nil
	case "pending":
		details, err := c.App.Friends().Pending(ctx)
		if err != nil {
			return err
		}
		c.printFriends(details)
		return nil
	case "sent":
		details, err := c.App.Friends().Sent(ctx)
		if err != nil {
			return err
		}
		c.printFriends(details)
		return nil
	case "request":
		id, err := singleID(rest, "friends request <user-id>")
		if err != nil {
			return err
		}
		if _, err := c.App.Friends().SendRequest(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Friend request sent to user %d\n", id)
		return nil
	case "accept":
		id, err := singleID(rest, "friends accept <user-id>")
		if err != nil {
			return err
		}
		if _, err := c.App.Friends().Accept(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Accepted friend request from user %d\n", id)
		return nil
	case "reject":
		id, err := singleID(rest, "friends reject <user-id>")
		if err != nil {
			return err
		}
		if err := c.App.Friends().Reject(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Rejected friend request from user %d\n", id)
		return nil
	case "remove":
		id, err := singleID(rest, "friends remove <user-id>")
		if err != nil {
			return err
		}
		if err := c.App.Friends().Remove(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Removed friend %d\n", id)
		return nil
	case "block":
		id, err := singleID(rest, "friends block <user-id>")
		if err != nil {
			return err
		}
		if _, err := c.App.Friends().Block(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Blocked user %d\n", id)
		return nil
	case "unblock":
		id, err := singleID(rest, "friends unblock <user-id>")
		if err != nil {
			return err
		}
		if err := c.App.Friends().Unblock(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Unblocked user %d\n", id)
		return nil
	case "blocked":
		details, err := c.App.Friends().Blocked(ctx)
		if err != nil {
			return err
		}
		w := c.table()
		fmt.Fprintln(w, "USER\tSTATUS")
		for _, d := range details {
			fmt.Fprintf(w, "%d\t%s\n", d.FriendID, d.Status)
		}
		return w.Flush()
	case "search":
		if len(rest) == 0 {
			return fmt.Errorf("usage: friends search <name>")
		}
		users, err := c.App.Friends().Search(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		w := c.table()
		fmt.Fprintln(w, "ID\tUSERNAME\tNAME")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Username, u.Name)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown friends command %q", sub)
	}
}

func (c *CLI) printFriends(details []service.FriendDetail) {
	w := c.table()
	fmt.Fprintln(w, "USER\tUSERNAME\tSTATUS")
	for _, d := range details {
		fmt.Fprintf(w, "%d\t%s\t%s\n", d.User.ID, d.User.Username, d.Friendship.Status)
	}
	w.Flush()
}

func singleID(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	return parseID(args[0])
}
