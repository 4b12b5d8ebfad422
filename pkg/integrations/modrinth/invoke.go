package modrinth

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/mythitorium/swagrinth/pkg/errors"
)

// Endpoint names accepted by [Client.Invoke].
const (
	MethodSearch              = "search"
	MethodGetProject          = "get_project"
	MethodGetProjectDeps      = "get_project_dependencies"
	MethodGetProjectTeam      = "get_project_team"
	MethodGetTeam             = "get_team"
	MethodGetUser             = "get_user"
	MethodGetAuthUser         = "get_auth_user"
	MethodGetUserProjects     = "get_user_projects"
	MethodGetProjectVersions  = "get_project_versions"
	MethodGetVersion          = "get_version"
	MethodGetFollowedProjects = "get_followed_projects"
	MethodGetNotifications    = "get_notifications"
)

// param declares one positional parameter. A non-nil def makes it optional.
type param struct {
	name string
	typ  string // "string" or "int"
	def  any
}

type endpoint struct {
	params []param
	call   func(ctx context.Context, c *Client, args []any) (any, error)
}

func str(name string) param { return param{name: name, typ: "string"} }

func idEndpoint[T any](name string, fn func(*Client, context.Context, string) (T, error)) endpoint {
	return endpoint{
		params: []param{str(name)},
		call: func(ctx context.Context, c *Client, args []any) (any, error) {
			return fn(c, ctx, args[0].(string))
		},
	}
}

var endpoints = map[string]endpoint{
	MethodSearch: {
		params: []param{
			str("query"),
			{name: "offset", typ: "int", def: DefaultSearchOffset},
			{name: "limit", typ: "int", def: DefaultSearchLimit},
		},
		call: func(ctx context.Context, c *Client, args []any) (any, error) {
			return c.Search(ctx, args[0].(string), args[1].(int), args[2].(int))
		},
	},
	MethodGetProject:          idEndpoint("project_id", (*Client).Project),
	MethodGetProjectDeps:      idEndpoint("project_id", (*Client).ProjectDependencies),
	MethodGetProjectTeam:      idEndpoint("project_id", (*Client).ProjectTeam),
	MethodGetTeam:             idEndpoint("team_id", (*Client).Team),
	MethodGetUser:             idEndpoint("user_id", (*Client).User),
	MethodGetUserProjects:     idEndpoint("user_id", (*Client).UserProjects),
	MethodGetProjectVersions:  idEndpoint("project_id", (*Client).ProjectVersions),
	MethodGetVersion:          idEndpoint("version_id", (*Client).Version),
	MethodGetFollowedProjects: idEndpoint("user_id", (*Client).FollowedProjects),
	MethodGetNotifications:    idEndpoint("user_id", (*Client).Notifications),
	MethodGetAuthUser: {
		call: func(ctx context.Context, c *Client, _ []any) (any, error) {
			return c.AuthUser(ctx)
		},
	},
}

// Methods returns the endpoint names accepted by [Client.Invoke], sorted.
func Methods() []string {
	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Signature describes an endpoint's parameters, e.g. "search(query string, [offset int], [limit int])".
func Signature(method string) (string, bool) {
	ep, ok := endpoints[method]
	if !ok {
		return "", false
	}
	parts := make([]string, len(ep.params))
	for i, p := range ep.params {
		s := p.name + " " + p.typ
		if p.def != nil {
			s = "[" + s + "]"
		}
		parts[i] = s
	}
	return fmt.Sprintf("%s(%s)", method, strings.Join(parts, ", ")), true
}

// Invoke calls an endpoint by name with dynamically typed arguments.
//
// This is the untyped entry point for scripting and command-line use. Every
// argument is checked against the endpoint's declared parameter types before
// any request is made; a mismatch returns an [errors.ArgumentError] of kind
// wrong-type carrying the parameter index and both type names. Trailing
// optional parameters (search offset and limit) take their defaults when
// omitted.
//
// The result is the same value the typed method returns, e.g. *Project for
// get_project or []Version for get_project_versions.
func (c *Client) Invoke(ctx context.Context, method string, args ...any) (any, error) {
	ep, ok := endpoints[method]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown method %q", method)
	}
	full, err := bindArgs(method, ep.params, args)
	if err != nil {
		return nil, err
	}
	return ep.call(ctx, c, full)
}

func bindArgs(method string, params []param, args []any) ([]any, error) {
	required := 0
	for _, p := range params {
		if p.def == nil {
			required++
		}
	}
	if len(args) < required || len(args) > len(params) {
		return nil, &errors.ArgumentError{
			Index:  min(len(args), len(params)),
			Kind:   errors.ArgArity,
			Reason: fmt.Sprintf("%s takes %s, got %d", method, arity(required, len(params)), len(args)),
		}
	}

	full := make([]any, len(params))
	for i, p := range params {
		if i >= len(args) {
			full[i] = p.def
			continue
		}
		if got := typeName(args[i]); got != p.typ {
			return nil, errors.NewWrongType(i, p.name, got, p.typ)
		}
		full[i] = args[i]
	}
	return full, nil
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func arity(required, total int) string {
	plural := func(n int) string {
		if n == 1 {
			return "1 argument"
		}
		return fmt.Sprintf("%d arguments", n)
	}
	if required == total {
		return plural(total)
	}
	return fmt.Sprintf("%d to %s", required, plural(total))
}
