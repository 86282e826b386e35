package cli

import (
	"context"
	"flag"
	"fmt"

	"foodieframe_client/internal/model"
)

func (c *CLI) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("login requires -u and -p")
	}

	sess, err := c.App.Auth().Login(ctx, model.Credentials{
		Username: *username,
		Password: *password,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Logged in as %s (id %d)\n", sess.User.Username, sess.User.ID)
	return nil
}

func (c *CLI) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("u", "", "username")
	email := fs.String("e", "", "email address")
	password := fs.String("p", "", "password")
	name := fs.String("n", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *email == "" || *password == "" {
		return fmt.Errorf("register requires -u, -e and -p")
	}

	user, err := c.App.Auth().Register(ctx, model.User{
		Username: *username,
		Email:    *email,
		Password: *password,
		Name:     *name,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Registered %s (id %d). Run `foodieframe login` to sign in.\n",
		user.Username, user.ID)
	return nil
}

func (c *CLI) logout() error {
	c.App.Auth().Logout()
	fmt.Fprintln(c.Out, "Logged out")
	return nil
}

func (c *CLI) whoami() error {
	user := c.App.Auth().CurrentUser()
	if user == nil {
		fmt.Fprintln(c.Out, "Not logged in")
		return nil
	}
	fmt.Fprintf(c.Out, "%s (id %d, %s)\n", user.Username, user.ID, user.Email)
	return nil
}

func (c *CLI) profile(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "update" {
		return fmt.Errorf("usage: profile update [-n name] [-e email] [-bio text]")
	}
	fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
	name := fs.String("n", "", "display name")
	email := fs.String("e", "", "email address")
	bio := fs.String("bio", "", "profile bio")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	current := c.App.Auth().CurrentUser()
	if current == nil {
		return fmt.Errorf("not logged in")
	}
	updated := *current
	if *name != "" {
		updated.Name = *name
	}
	if *email != "" {
		updated.Email = *email
	}
	if *bio != "" {
		updated.Bio = *bio
	}

	user, err := c.App.Auth().UpdateProfile(ctx, updated)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "Profile updated for %s\n", user.Username)
	return nil
}
