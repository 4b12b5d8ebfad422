package modrinth

import "time"

// Project is a published mod, plugin, modpack, resource pack or shader.
type Project struct {
	ID                   string         `json:"id"`
	Slug                 string         `json:"slug"`
	ProjectType          string         `json:"project_type"` // mod, modpack, resourcepack, shader, plugin, datapack
	Team                 string         `json:"team"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	Body                 string         `json:"body,omitempty"`
	Categories           []string       `json:"categories"`
	AdditionalCategories []string       `json:"additional_categories,omitempty"`
	ClientSide           string         `json:"client_side"` // required, optional, unsupported, unknown
	ServerSide           string         `json:"server_side"`
	Status               string         `json:"status"`
	Downloads            int            `json:"downloads"`
	Followers            int            `json:"followers"`
	IconURL              string         `json:"icon_url,omitempty"`
	Published            time.Time      `json:"published"`
	Updated              time.Time      `json:"updated"`
	License              *License       `json:"license,omitempty"`
	Versions             []string       `json:"versions,omitempty"` // version ids
	GameVersions         []string       `json:"game_versions,omitempty"`
	Loaders              []string       `json:"loaders,omitempty"`
	IssuesURL            string         `json:"issues_url,omitempty"`
	SourceURL            string         `json:"source_url,omitempty"`
	WikiURL              string         `json:"wiki_url,omitempty"`
	DiscordURL           string         `json:"discord_url,omitempty"`
	Gallery              []GalleryImage `json:"gallery,omitempty"`
}

// License identifies a project's license.
type License struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// GalleryImage is one image in a project's gallery.
type GalleryImage struct {
	URL         string `json:"url"`
	Featured    bool   `json:"featured"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// SearchHit is a project as it appears in search results.
// Search hits use a flatter shape than [Project]: the license is a plain
// SPDX id and the author is a username.
type SearchHit struct {
	ProjectID         string    `json:"project_id"`
	Slug              string    `json:"slug"`
	Author            string    `json:"author"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Categories        []string  `json:"categories"`
	DisplayCategories []string  `json:"display_categories,omitempty"`
	ProjectType       string    `json:"project_type"`
	Downloads         int       `json:"downloads"`
	Follows           int       `json:"follows"`
	IconURL           string    `json:"icon_url,omitempty"`
	DateCreated       time.Time `json:"date_created"`
	DateModified      time.Time `json:"date_modified"`
	LatestVersion     string    `json:"latest_version,omitempty"`
	License           string    `json:"license,omitempty"`
	ClientSide        string    `json:"client_side,omitempty"`
	ServerSide        string    `json:"server_side,omitempty"`
	Versions          []string  `json:"versions,omitempty"` // game versions
	Gallery           []string  `json:"gallery,omitempty"`
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Hits      []SearchHit `json:"hits"`
	Offset    int         `json:"offset"`
	Limit     int         `json:"limit"`
	TotalHits int         `json:"total_hits"`
}

// Len returns the number of hits on this page.
func (r *SearchResult) Len() int { return len(r.Hits) }

// User is a Modrinth account.
// Email is only populated for the authenticated user.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Created   time.Time `json:"created"`
	Role      string    `json:"role"` // admin, moderator, developer
}

// TeamMember is a user's membership in a team.
type TeamMember struct {
	TeamID      string `json:"team_id"`
	User        User   `json:"user"`
	Role        string `json:"role"`
	Permissions *int64 `json:"permissions,omitempty"` // nil unless visible to the caller
	Accepted    bool   `json:"accepted"`
	Ordering    int    `json:"ordering"`
}

// Team is the member list of a project's team.
type Team []TeamMember

// Members returns the members in API order.
func (t Team) Members() []TeamMember { return t }

// Owner returns the member whose role is "Owner", if any.
func (t Team) Owner() (TeamMember, bool) {
	for _, m := range t {
		if m.Role == "Owner" {
			return m, true
		}
	}
	return TeamMember{}, false
}

// Version is a specific release artifact of a project.
type Version struct {
	ID            string              `json:"id"`
	ProjectID     string              `json:"project_id"`
	AuthorID      string              `json:"author_id"`
	Name          string              `json:"name"`
	VersionNumber string              `json:"version_number"`
	Changelog     string              `json:"changelog,omitempty"`
	Dependencies  []VersionDependency `json:"dependencies"`
	GameVersions  []string            `json:"game_versions"`
	VersionType   string              `json:"version_type"` // release, beta, alpha
	Loaders       []string            `json:"loaders"`
	Featured      bool                `json:"featured"`
	Status        string              `json:"status,omitempty"`
	DatePublished time.Time           `json:"date_published"`
	Downloads     int                 `json:"downloads"`
	Files         []VersionFile       `json:"files"`
}

// PrimaryFile returns the file flagged as primary, falling back to the first file.
func (v *Version) PrimaryFile() (VersionFile, bool) {
	for _, f := range v.Files {
		if f.Primary {
			return f, true
		}
	}
	if len(v.Files) > 0 {
		return v.Files[0], true
	}
	return VersionFile{}, false
}

// VersionDependency links a version to another project or version.
type VersionDependency struct {
	VersionID      string `json:"version_id,omitempty"`
	ProjectID      string `json:"project_id,omitempty"`
	FileName       string `json:"file_name,omitempty"`
	DependencyType string `json:"dependency_type"` // required, optional, incompatible, embedded
}

// VersionFile is a downloadable file attached to a version.
type VersionFile struct {
	URL      string            `json:"url"`
	Filename string            `json:"filename"`
	Primary  bool              `json:"primary"`
	Size     int64             `json:"size"`
	FileType string            `json:"file_type,omitempty"`
	Hashes   map[string]string `json:"hashes"` // sha1, sha512
}

// DependencyList holds every project and version a project depends on.
type DependencyList struct {
	Projects []Project `json:"projects"`
	Versions []Version `json:"versions"`
}

// Len returns the total number of dependency entries.
func (d *DependencyList) Len() int { return len(d.Projects) + len(d.Versions) }

// Notification is an entry in a user's notification feed.
type Notification struct {
	ID      string               `json:"id"`
	UserID  string               `json:"user_id"`
	Type    string               `json:"type,omitempty"`
	Title   string               `json:"title"`
	Text    string               `json:"text"`
	Link    string               `json:"link"`
	Read    bool                 `json:"read"`
	Created time.Time            `json:"created"`
	Actions []NotificationAction `json:"actions,omitempty"`
}

// NotificationAction is a follow-up the user can take on a notification.
type NotificationAction struct {
	Title       string      `json:"title"`
	ActionRoute ActionRoute `json:"action_route"`
}

// ActionRoute is the [method, path] pair the API returns for an action.
type ActionRoute []string
