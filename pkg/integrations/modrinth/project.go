package modrinth

import (
	"context"

	"github.com/mythitorium/swagrinth/pkg/errors"
)

// Resource kinds reported in [errors.NotFoundError].
const (
	KindProject  = "project"
	KindUser     = "user"
	KindTeam     = "team"
	KindSearch   = "search"
	KindVersion  = "project version"
	KindAuthUser = "authenticated user"
)

// Project retrieves a project by id or slug.
//
// Returns:
//   - [errors.ArgumentError] if id is empty or not a valid path segment
//   - [errors.AccessError] on 401
//   - [errors.NotFoundError] (kind "project") on any other non-200 status
func (c *Client) Project(ctx context.Context, id string) (*Project, error) {
	if err := errors.ValidateID(0, "project_id", id); err != nil {
		return nil, err
	}
	var p Project
	if err := c.fetch(ctx, resource{id, KindProject}, nil, &p, "project", id); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProjectDependencies retrieves every project and version the given project depends on.
func (c *Client) ProjectDependencies(ctx context.Context, id string) (*DependencyList, error) {
	if err := errors.ValidateID(0, "project_id", id); err != nil {
		return nil, err
	}
	var deps DependencyList
	if err := c.fetch(ctx, resource{id, KindProject}, nil, &deps, "project", id, "dependencies"); err != nil {
		return nil, err
	}
	return &deps, nil
}

// ProjectTeam retrieves the team members of a project.
func (c *Client) ProjectTeam(ctx context.Context, id string) (Team, error) {
	if err := errors.ValidateID(0, "project_id", id); err != nil {
		return nil, err
	}
	var team Team
	if err := c.fetch(ctx, resource{id, KindProject}, nil, &team, "project", id, "members"); err != nil {
		return nil, err
	}
	return team, nil
}

// Team retrieves the members of a team by team id.
func (c *Client) Team(ctx context.Context, teamID string) (Team, error) {
	if err := errors.ValidateID(0, "team_id", teamID); err != nil {
		return nil, err
	}
	var team Team
	if err := c.fetch(ctx, resource{teamID, KindTeam}, nil, &team, "team", teamID, "members"); err != nil {
		return nil, err
	}
	return team, nil
}

// ProjectVersions lists every version of a project, newest first.
func (c *Client) ProjectVersions(ctx context.Context, id string) ([]Version, error) {
	if err := errors.ValidateID(0, "project_id", id); err != nil {
		return nil, err
	}
	var versions []Version
	if err := c.fetch(ctx, resource{id, KindProject}, nil, &versions, "project", id, "version"); err != nil {
		return nil, err
	}
	return versions, nil
}

// Version retrieves a single version by id.
func (c *Client) Version(ctx context.Context, id string) (*Version, error) {
	if err := errors.ValidateID(0, "version_id", id); err != nil {
		return nil, err
	}
	var v Version
	if err := c.fetch(ctx, resource{id, KindVersion}, nil, &v, "version", id); err != nil {
		return nil, err
	}
	return &v, nil
}
