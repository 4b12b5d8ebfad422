package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

const dateLayout = "Jan 2, 2006"

// newTable returns a rounded-border table with the CLI's header style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func printSearchResult(w io.Writer, res *modrinth.SearchResult) {
	if res.Len() == 0 {
		printInfo(w, "No projects found")
		return
	}
	t := newTable("Slug", "Title", "Type", "Downloads", "Author")
	for _, h := range res.Hits {
		t.Row(h.Slug, truncate(h.Title, 40), h.ProjectType, formatCount(h.Downloads), h.Author)
	}
	fmt.Fprintln(w, t.Render())
	printDetail(w, "showing %d-%d of %d", res.Offset+1, res.Offset+res.Len(), res.TotalHits)
}

func printProject(w io.Writer, p *modrinth.Project) {
	printTitle(w, p.Title)
	if p.Description != "" {
		printDetail(w, "%s", p.Description)
	}
	printNewline(w)
	printKeyValue(w, "ID", p.ID)
	printKeyValue(w, "Slug", p.Slug)
	printKeyValue(w, "Type", p.ProjectType)
	printKeyValue(w, "Status", p.Status)
	printKeyValue(w, "Downloads", formatCount(p.Downloads))
	printKeyValue(w, "Followers", formatCount(p.Followers))
	printKeyValue(w, "Categories", strings.Join(p.Categories, ", "))
	printKeyValue(w, "Loaders", strings.Join(p.Loaders, ", "))
	printKeyValue(w, "Client/Server", sides(p.ClientSide, p.ServerSide))
	if p.License != nil {
		printKeyValue(w, "License", firstNonEmpty(p.License.Name, p.License.ID))
	}
	printKeyValue(w, "Published", formatDate(p.Published))
	printKeyValue(w, "Updated", formatDate(p.Updated))
	printKeyValue(w, "Versions", fmt.Sprint(len(p.Versions)))
	if p.SourceURL != "" {
		printKeyValue(w, "Source", StyleLink.Render(p.SourceURL))
	}
	if p.IssuesURL != "" {
		printKeyValue(w, "Issues", StyleLink.Render(p.IssuesURL))
	}
}

func printVersion(w io.Writer, v *modrinth.Version) {
	printTitle(w, strings.TrimSpace(v.Name+" "+StyleDim.Render(v.VersionNumber)))
	printNewline(w)
	printKeyValue(w, "ID", v.ID)
	printKeyValue(w, "Project", v.ProjectID)
	printKeyValue(w, "Type", v.VersionType)
	printKeyValue(w, "Loaders", strings.Join(v.Loaders, ", "))
	printKeyValue(w, "Game versions", strings.Join(v.GameVersions, ", "))
	printKeyValue(w, "Downloads", formatCount(v.Downloads))
	printKeyValue(w, "Published", formatDate(v.DatePublished))
	if f, ok := v.PrimaryFile(); ok {
		printKeyValue(w, "File", f.Filename)
		printKeyValue(w, "SHA-1", f.Hashes["sha1"])
		printKeyValue(w, "URL", StyleLink.Render(f.URL))
	}
	if len(v.Dependencies) > 0 {
		printNewline(w)
		printTitle(w, "Dependencies")
		for _, d := range v.Dependencies {
			target := firstNonEmpty(d.ProjectID, d.VersionID, d.FileName)
			fmt.Fprintf(w, "  %s %s %s\n", StyleDim.Render(iconBullet), target, StyleDim.Render(d.DependencyType))
		}
	}
}

func printVersions(w io.Writer, versions []modrinth.Version) {
	if len(versions) == 0 {
		printInfo(w, "No versions")
		return
	}
	t := newTable("ID", "Version", "Type", "Loaders", "Game versions", "Published")
	for _, v := range versions {
		t.Row(v.ID, v.VersionNumber, v.VersionType, strings.Join(v.Loaders, ","),
			summarizeList(v.GameVersions, 3), formatDate(v.DatePublished))
	}
	fmt.Fprintln(w, t.Render())
}

func printUser(w io.Writer, u *modrinth.User) {
	printTitle(w, "@"+u.Username)
	if u.Bio != "" {
		printDetail(w, "%s", u.Bio)
	}
	printNewline(w)
	printKeyValue(w, "ID", u.ID)
	printKeyValue(w, "Name", u.Name)
	printKeyValue(w, "Email", u.Email)
	printKeyValue(w, "Role", u.Role)
	printKeyValue(w, "Joined", formatDate(u.Created))
}

func printTeam(w io.Writer, team modrinth.Team) {
	if len(team) == 0 {
		printInfo(w, "No members")
		return
	}
	t := newTable("Username", "Role", "Accepted")
	for _, m := range team.Members() {
		accepted := ""
		if m.Accepted {
			accepted = iconSuccess
		}
		t.Row("@"+m.User.Username, m.Role, accepted)
	}
	fmt.Fprintln(w, t.Render())
}

func printProjects(w io.Writer, projects []modrinth.Project) {
	if len(projects) == 0 {
		printInfo(w, "No projects")
		return
	}
	t := newTable("Slug", "Title", "Type", "Downloads")
	for _, p := range projects {
		t.Row(p.Slug, truncate(p.Title, 40), p.ProjectType, formatCount(p.Downloads))
	}
	fmt.Fprintln(w, t.Render())
}

func printNotifications(w io.Writer, notifs []modrinth.Notification) {
	if len(notifs) == 0 {
		printInfo(w, "No notifications")
		return
	}
	for _, n := range notifs {
		marker := StyleHighlight.Render(iconBullet)
		if n.Read {
			marker = StyleDim.Render(iconBullet)
		}
		fmt.Fprintf(w, "%s %s %s\n", marker, n.Title, StyleDim.Render(formatDate(n.Created)))
		if n.Text != "" {
			printDetail(w, "%s", n.Text)
		}
	}
}

func printDependencies(w io.Writer, root string, deps *modrinth.DependencyList) {
	if deps.Len() == 0 {
		printInfo(w, "%s has no dependencies", root)
		return
	}
	printTitle(w, fmt.Sprintf("%s depends on %d entries", root, deps.Len()))
	for _, p := range deps.Projects {
		fmt.Fprintf(w, "  %s %s %s\n", StyleDim.Render(iconArrow), p.Title, StyleDim.Render(p.Slug))
	}
	for _, v := range deps.Versions {
		fmt.Fprintf(w, "  %s %s %s\n", StyleDim.Render(iconArrow), v.Name, StyleDim.Render(v.VersionNumber))
	}
}

// =============================================================================
// Helpers
// =============================================================================

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func sides(client, server string) string {
	if client == "" && server == "" {
		return ""
	}
	return firstNonEmpty(client, "unknown") + " / " + firstNonEmpty(server, "unknown")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// summarizeList shows the last n entries, which for game versions are the newest.
func summarizeList(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d)", strings.Join(items[len(items)-n:], ", "), len(items)-n)
}
