package display

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"portfolio-stats/internal/activity"
	"portfolio-stats/internal/codewars"
	"portfolio-stats/internal/github"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

type Formatter struct {
	format string
}

func NewFormatter(format string) *Formatter {
	return &Formatter{format: format}
}

// Display renders both widgets. Either may be nil when its source was not
// requested or failed to load.
func (f *Formatter) Display(gh *github.Widget, cw *codewars.Widget) error {
	switch f.format {
	case "json":
		return f.displayJSON(gh, cw)
	case "table":
		if gh != nil {
			f.displayGitHub(gh)
		}
		if cw != nil {
			f.displayCodewars(cw)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}

func (f *Formatter) displayJSON(gh *github.Widget, cw *codewars.Widget) error {
	out := struct {
		GitHub   *github.Widget   `json:"github,omitempty"`
		Codewars *codewars.Widget `json:"codewars,omitempty"`
	}{gh, cw}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

var greenPalette = heatPalette{
	color.New(color.FgHiBlack),
	color.New(color.FgGreen),
	color.New(color.FgHiGreen),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgHiGreen, color.Bold),
}

var redPalette = heatPalette{
	color.New(color.FgHiBlack),
	color.New(color.FgRed),
	color.New(color.FgHiRed),
	color.New(color.FgRed, color.Bold),
	color.New(color.FgHiRed, color.Bold),
}

type heatPalette [5]*color.Color

func (f *Formatter) displayGitHub(w *github.Widget) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)

	cyan.Println("\n" + strings.Repeat("=", 80))
	if w.Profile != nil {
		cyan.Printf("  GitHub Activity for @%s\n", w.Profile.Login)
	} else {
		cyan.Println("  GitHub Activity")
	}
	cyan.Println(strings.Repeat("=", 80))

	if w.Profile != nil {
		fmt.Println()
		green.Println("👤 PROFILE")
		fmt.Println(strings.Repeat("-", 80))

		table := newKeyValueTable()
		if w.Profile.Name != "" {
			table.Append([]string{"Name", w.Profile.Name})
		}
		table.Append([]string{"Username", w.Profile.Login})
		if w.Profile.Bio != "" {
			table.Append([]string{"Bio", truncate(w.Profile.Bio, 60)})
		}
		if w.Profile.Location != "" {
			table.Append([]string{"Location", w.Profile.Location})
		}
		if w.Profile.Blog != "" {
			table.Append([]string{"Website", w.Profile.Blog})
		}
		table.Append([]string{"Joined", w.Profile.CreatedAt.Format("January 2, 2006")})
		table.Append([]string{"Public Repositories", fmt.Sprintf("%d", w.Profile.PublicRepos)})
		table.Append([]string{"Followers", fmt.Sprintf("%d", w.Profile.Followers)})
		table.Render()
	}

	fmt.Println()
	green.Printf("📅 CONTRIBUTIONS (%d)\n", w.Year)
	fmt.Println(strings.Repeat("-", 80))

	table := newKeyValueTable()
	table.Append([]string{"Total Contributions", fmt.Sprintf("%d", w.TotalContributions)})
	if w.Streaks.Current > 0 {
		table.Append([]string{"Current Streak", fmt.Sprintf("%d days 🔥", w.Streaks.Current)})
	} else {
		table.Append([]string{"Current Streak", "0 days (inactive)"})
	}
	table.Append([]string{"Maximum Streak", fmt.Sprintf("%d days 🏆", w.Streaks.Max)})
	table.Append([]string{"Total Stars Received", fmt.Sprintf("%d ⭐", w.TotalStars)})
	table.Append([]string{"Total Forks Received", fmt.Sprintf("%d", w.TotalForks)})
	if !w.FullHistory {
		table.Append([]string{"Coverage", "recent events only (set GITHUB_TOKEN for full history)"})
	}
	table.Render()

	fmt.Println()
	renderHeatmap(w.Weeks, w.Months, greenPalette)

	if len(w.Languages) > 0 {
		fmt.Println()
		green.Println("💻 TOP LANGUAGES")
		fmt.Println(strings.Repeat("-", 80))

		table := newListTable([]string{"Language", "Repositories", "Share"})
		count := len(w.Languages)
		if count > 6 {
			count = 6
		}
		for _, lang := range w.Languages[:count] {
			bar := createBar(lang.Percentage, 30)
			table.Append([]string{
				lang.Name,
				fmt.Sprintf("%d", lang.Count),
				fmt.Sprintf("%.1f%% %s", lang.Percentage, bar),
			})
		}
		table.Render()
	}

	if len(w.TopRepositories) > 0 {
		fmt.Println()
		green.Println("🌟 POPULAR REPOSITORIES")
		fmt.Println(strings.Repeat("-", 80))

		table := newListTable([]string{"Repository", "Stars", "Forks", "Language"})
		for _, repo := range w.TopRepositories {
			lang := repo.Language
			if lang == "" {
				lang = "N/A"
			}
			table.Append([]string{
				repo.Name,
				fmt.Sprintf("%d ⭐", repo.Stars),
				fmt.Sprintf("%d", repo.Forks),
				lang,
			})
		}
		table.Render()
	}

	if len(w.RecentEvents) > 0 {
		fmt.Println()
		green.Printf("🕐 RECENT ACTIVITY (%d)\n", w.Year)
		fmt.Println(strings.Repeat("-", 80))

		table := newListTable([]string{"Activity", "Date"})
		for _, event := range w.RecentEvents {
			table.Append([]string{
				event.Description(),
				event.CreatedAt.Format("Jan 2, 2006"),
			})
		}
		table.Render()
	}
}

func (f *Formatter) displayCodewars(w *codewars.Widget) {
	cyan := color.New(color.FgCyan, color.Bold)
	red := color.New(color.FgRed)

	cyan.Println("\n" + strings.Repeat("=", 80))
	if w.User != nil {
		cyan.Printf("  Codewars Activity for @%s\n", w.User.Username)
	} else {
		cyan.Println("  Codewars Activity")
	}
	cyan.Println(strings.Repeat("=", 80))

	fmt.Println()
	red.Printf("🏆 KATA (%d)\n", w.Year)
	fmt.Println(strings.Repeat("-", 80))

	table := newKeyValueTable()
	if w.User != nil {
		table.Append([]string{"Honor", fmt.Sprintf("%d", w.User.Honor)})
		table.Append([]string{"Rank", w.User.Ranks.Overall.Name})
		table.Append([]string{"Total Completed", fmt.Sprintf("%d", w.User.CodeChallenges.TotalCompleted)})
	}
	table.Append([]string{"Solved This Year", fmt.Sprintf("%d", w.TotalSolved)})
	if w.Streaks.Current > 0 {
		table.Append([]string{"Current Streak", fmt.Sprintf("%d days 🔥", w.Streaks.Current)})
	} else {
		table.Append([]string{"Current Streak", "0 days (inactive)"})
	}
	table.Append([]string{"Maximum Streak", fmt.Sprintf("%d days 🏆", w.Streaks.Max)})
	table.Render()

	fmt.Println()
	renderHeatmap(w.Weeks, w.Months, redPalette)

	if len(w.TopLanguages) > 0 {
		fmt.Println()
		red.Println("💻 TOP LANGUAGES")
		fmt.Println(strings.Repeat("-", 80))

		table := newListTable([]string{"Language", "Score"})
		count := len(w.TopLanguages)
		if count > 6 {
			count = 6
		}
		for _, lang := range w.TopLanguages[:count] {
			table.Append([]string{lang.Name, fmt.Sprintf("%d", lang.Score)})
		}
		table.Render()
	}

	if len(w.RecentChallenges) > 0 {
		fmt.Println()
		red.Printf("🕐 RECENT CHALLENGES (%d)\n", w.Year)
		fmt.Println(strings.Repeat("-", 80))

		table := newListTable([]string{"Kata", "Completed"})
		for _, ch := range w.RecentChallenges {
			completed := ch.CompletedAt
			if at, err := time.Parse(time.RFC3339, ch.CompletedAt); err == nil {
				completed = at.Format("Jan 2, 2006")
			}
			table.Append([]string{truncate(ch.Name, 50), completed})
		}
		table.Render()
	}
}

// renderHeatmap prints the year grid the way the web widget draws it: one
// column per week, one row per weekday, colored by activity level. Cells
// outside the selected year render blank.
func renderHeatmap(weeks []activity.Week, months []activity.MonthLabel, palette heatPalette) {
	var labels strings.Builder
	for _, m := range months {
		width := m.Width * 2
		name := m.Name
		if len(name) > width {
			name = name[:width]
		}
		labels.WriteString(name)
		labels.WriteString(strings.Repeat(" ", width-len(name)))
	}
	fmt.Println("    " + labels.String())

	dayNames := [7]string{"", "Mon", "", "Wed", "", "Fri", ""}
	for row := 0; row < 7; row++ {
		fmt.Printf("%3s ", dayNames[row])
		for _, week := range weeks {
			cell := week[row]
			if !cell.InYear {
				fmt.Print("  ")
				continue
			}
			_, _ = palette[activityLevel(cell.Count)].Print("■ ")
		}
		fmt.Println()
	}
}

// activityLevel maps a count onto the 5-step intensity scale.
func activityLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	case count <= 6:
		return 3
	default:
		return 4
	}
}

func newKeyValueTable() *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func newListTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetColumnSeparator(" | ")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func createBar(percentage float64, width int) string {
	filled := int(percentage / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func DisplayProgress(message string) {
	cyan := color.New(color.FgCyan)
	cyan.Printf("⏳ %s...\n", message)
}

func DisplaySuccess(message string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", message)
}

func DisplayWarning(message string) {
	yellow := color.New(color.FgYellow)
	yellow.Printf("⚠ %s\n", message)
}

func DisplayError(message string) {
	red := color.New(color.FgRed, color.Bold)
	red.Printf("✗ %s\n", message)
}
