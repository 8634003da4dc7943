package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// UsersList prints every registered user.
func (r *Runner) UsersList(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.userRepo()
	if err != nil {
		return err
	}

	users, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(users, true)
	}

	r.writePlainHeader(fmt.Sprintf("Users (%d)", len(users)))
	for _, u := range users {
		marker := " "
		if u.Admin {
			marker = "*"
		}
		r.writePlain("%s %12d  %s\n", marker, u.ID, u.Username)
	}

	return nil
}

// UsersPromote grants a user admin rights.
func (r *Runner) UsersPromote(ctx context.Context, cmd *cli.Command) error {
	r.reloadConfig(cmd)

	repo, err := r.userRepo()
	if err != nil {
		return err
	}

	id := int64(cmd.Int("id"))
	if err := repo.PromoteAdmin(ctx, id); err != nil {
		return fmt.Errorf("failed to promote user: %w", err)
	}

	r.writePlainln("✓ User %d is now an admin", id)
	return nil
}
