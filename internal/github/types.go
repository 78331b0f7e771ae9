package github

import (
	"strings"
	"time"
)

// Profile is the subset of a GitHub user the widget displays.
type Profile struct {
	Login       string
	Name        string
	Bio         string
	Company     string
	Location    string
	Blog        string
	AvatarURL   string
	PublicRepos int
	PublicGists int
	Followers   int
	Following   int
	CreatedAt   time.Time
}

type Repository struct {
	Name        string
	FullName    string
	Description string
	HTMLURL     string
	Language    string
	Stars       int
	Forks       int
	Fork        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Event is one public action from the user's event feed.
type Event struct {
	Type      string
	Repo      string
	CreatedAt time.Time
}

// Description renders an event as a short human line for the recent-activity
// list.
func (e Event) Description() string {
	repo := e.Repo
	if i := strings.LastIndex(repo, "/"); i >= 0 {
		repo = repo[i+1:]
	}

	switch e.Type {
	case "PushEvent":
		return "Pushed to " + repo
	case "CreateEvent":
		return "Created " + repo
	case "PullRequestEvent":
		return "Pull request in " + repo
	case "IssuesEvent":
		return "Issue in " + repo
	case "ReleaseEvent":
		return "Released " + repo
	case "ForkEvent":
		return "Forked " + repo
	case "WatchEvent":
		return "Starred " + repo
	default:
		return "Activity in " + repo
	}
}
