package cli

import (
	"context"
	"fmt"
	"strings"

	"foodieframe_client/internal/model"
)

func (c *CLI) groups(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: groups list|public|show|search|mine|create|members|join|leave|role")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		groups, err := c.App.Groups().List(ctx)
		if err != nil {
			return err
		}
		c.printGroups(groups)
		return nil
	case "public":
		groups, err := c.App.Groups().Public(ctx)
		if err != nil {
			return err
		}
		c.printGroups(groups)
		return nil
	case "show":
		id, err := singleID(rest, "groups show <id>")
		if err != nil {
			return err
		}
		group, err := c.App.Groups().Get(ctx, id)
		if err != nil {
			return err
		}
		count, err := c.App.Groups().MemberCount(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "%s (id %d, %s, %d members)\n%s\n",
			group.Name, group.ID, group.Privacy, count, group.Description)
		return nil
	case "search":
		if len(rest) == 0 {
			return fmt.Errorf("usage: groups search <query>")
		}
		groups, err := c.App.Groups().Search(ctx, strings.Join(rest, " "))
		if err != nil {
			return err
		}
		c.printGroups(groups)
		return nil
	case "mine":
		members, err := c.App.Groups().Mine(ctx)
		if err != nil {
			return err
		}
		w := c.table()
		fmt.Fprintln(w, "GROUP\tROLE\tSTATUS")
		for _, m := range members {
			fmt.Fprintf(w, "%d\t%s\t%s\n", m.GroupID, m.Role, m.Status)
		}
		return w.Flush()
	case "create":
		if len(rest) == 0 {
			return fmt.Errorf("usage: groups create <name> [description]")
		}
		group := model.RecipeGroup{Name: rest[0]}
		if len(rest) > 1 {
			group.Description = strings.Join(rest[1:], " ")
		}
		created, err := c.App.Groups().Create(ctx, group)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Created group %d: %s\n", created.ID, created.Name)
		return nil
	case "members":
		id, err := singleID(rest, "groups members <id>")
		if err != nil {
			return err
		}
		members, err := c.App.Groups().Members(ctx, id)
		if err != nil {
			return err
		}
		w := c.table()
		fmt.Fprintln(w, "USER\tROLE\tJOINED")
		for _, m := range members {
			fmt.Fprintf(w, "%d\t%s\t%s\n", m.UserID, m.Role, m.JoinedDate)
		}
		return w.Flush()
	case "join":
		id, err := singleID(rest, "groups join <id>")
		if err != nil {
			return err
		}
		if _, err := c.App.Groups().Join(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Joined group %d\n", id)
		return nil
	case "leave":
		id, err := singleID(rest, "groups leave <id>")
		if err != nil {
			return err
		}
		if err := c.App.Groups().Leave(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "Left group %d\n", id)
		return nil
	case "role":
		if len(rest) != 3 {
			return fmt.Errorf("usage: groups role <group-id> <user-id> ADMIN|MEMBER")
		}
		groupID, err := parseID(rest[0])
		if err != nil {
			return err
		}
		userID, err := parseID(rest[1])
		if err != nil {
			return err
		}
		role := model.MemberRole(strings.ToUpper(rest[2]))
		if role != model.MemberRoleAdmin && role != model.MemberRoleMember {
			return fmt.Errorf("role must be ADMIN or MEMBER")
		}
		if _, err := c.App.Groups().SetMemberRole(ctx, groupID, userID, role); err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "User %d is now %s in group %d\n", userID, role, groupID)
		return nil
	default:
		return fmt.Errorf("unknown groups command %q", sub)
	}
}

func (c *CLI) printGroups(groups []model.RecipeGroup) {
	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tPRIVACY\tCREATOR")
	for _, g := range groups {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", g.ID, g.Name, g.Privacy, g.CreatorID)
	}
	w.Flush()
}
