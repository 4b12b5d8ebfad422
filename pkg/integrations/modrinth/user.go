package modrinth

import (
	"context"

	"github.com/mythitorium/swagrinth/pkg/errors"
)

// User retrieves a user by id or username.
func (c *Client) User(ctx context.Context, id string) (*User, error) {
	if err := errors.ValidateID(0, "user_id", id); err != nil {
		return nil, err
	}
	var u User
	if err := c.fetch(ctx, resource{id, KindUser}, nil, &u, "user", id); err != nil {
		return nil, err
	}
	return &u, nil
}

// AuthUser retrieves the user the current token belongs to.
// Without a valid token the API answers 401 and an [errors.AccessError] is returned.
func (c *Client) AuthUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.fetch(ctx, resource{"token", KindAuthUser}, nil, &u, "user"); err != nil {
		return nil, err
	}
	return &u, nil
}

// UserProjects lists the projects a user is a member of.
func (c *Client) UserProjects(ctx context.Context, id string) ([]Project, error) {
	if err := errors.ValidateID(0, "user_id", id); err != nil {
		return nil, err
	}
	var projects []Project
	if err := c.fetch(ctx, resource{id, KindUser}, nil, &projects, "user", id, "projects"); err != nil {
		return nil, err
	}
	return projects, nil
}

// FollowedProjects lists the projects a user follows.
// The endpoint requires a token belonging to that user (or a moderator).
func (c *Client) FollowedProjects(ctx context.Context, userID string) ([]Project, error) {
	if err := errors.ValidateID(0, "user_id", userID); err != nil {
		return nil, err
	}
	var projects []Project
	if err := c.fetch(ctx, resource{userID, KindUser}, nil, &projects, "user", userID, "follows"); err != nil {
		return nil, err
	}
	return projects, nil
}

// Notifications lists a user's notifications.
// The endpoint requires a token belonging to that user (or a moderator).
func (c *Client) Notifications(ctx context.Context, userID string) ([]Notification, error) {
	if err := errors.ValidateID(0, "user_id", userID); err != nil {
		return nil, err
	}
	var notifs []Notification
	if err := c.fetch(ctx, resource{userID, KindUser}, nil, &notifs, "user", userID, "notifications"); err != nil {
		return nil, err
	}
	return notifs, nil
}
