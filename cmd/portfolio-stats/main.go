package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"portfolio-stats/internal/cache"
	"portfolio-stats/internal/codewars"
	"portfolio-stats/internal/config"
	"portfolio-stats/internal/display"
	"portfolio-stats/internal/github"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var flags config.Config
	var configPath string

	flag.StringVar(&flags.Token, "token", "", "GitHub Personal Access Token (overrides GITHUB_TOKEN env)")
	flag.StringVar(&flags.GitHubUser, "github-user", "", "GitHub username for the activity widget")
	flag.StringVar(&flags.CodewarsUser, "codewars-user", "", "Codewars username for the kata widget")
	flag.IntVar(&flags.Year, "year", 0, "Year to display (defaults to the current year)")
	flag.StringVar(&flags.Format, "format", "table", "Output format: table, json")
	flag.BoolVar(&flags.NoCache, "no-cache", false, "Disable response caching")
	flag.IntVar(&flags.MaxWorkers, "workers", 10, "Maximum concurrent API requests")
	flag.StringVar(&configPath, "config", "portfolio-stats.yaml", "Path to an optional YAML config file")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: portfolio-stats [options]\n\n")
		fmt.Fprintf(os.Stderr, "Renders portfolio activity widgets (heatmap, streaks, languages)\n")
		fmt.Fprintf(os.Stderr, "from GitHub and Codewars in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  portfolio-stats --github-user octocat\n")
		fmt.Fprintf(os.Stderr, "  portfolio-stats --github-user octocat --codewars-user octocat --year 2023\n")
		fmt.Fprintf(os.Stderr, "  portfolio-stats --github-user octocat --format json\n")
		fmt.Fprintf(os.Stderr, "\nAuthentication:\n")
		fmt.Fprintf(os.Stderr, "  Set GITHUB_TOKEN (env or .env) for the full contribution calendar;\n")
		fmt.Fprintf(os.Stderr, "  without it the GitHub widget falls back to recent public events.\n")
	}

	flag.Parse()

	cfg, err := config.Load(flags, configPath)
	if err != nil {
		display.DisplayError(fmt.Sprintf("Configuration error: %v", err))
		os.Exit(1)
	}

	ctx := context.Background()
	now := time.Now().UTC()
	store := cache.New(cfg.Cache, !cfg.NoCache)

	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	_, _ = cyan.Println("🚀 Fetching portfolio activity...")
	fmt.Println()

	var githubWidget *github.Widget
	if cfg.GitHubUser != "" {
		githubWidget = buildGitHubWidget(ctx, cfg, store, now)
	}

	var codewarsWidget *codewars.Widget
	if cfg.CodewarsUser != "" {
		codewarsWidget = buildCodewarsWidget(ctx, cfg, store, now)
	}

	if githubWidget == nil && codewarsWidget == nil {
		display.DisplayError("No activity data could be loaded")
		os.Exit(1)
	}

	formatter := display.NewFormatter(cfg.Format)
	if err := formatter.Display(githubWidget, codewarsWidget); err != nil {
		display.DisplayError(fmt.Sprintf("Failed to display widgets: %v", err))
		os.Exit(1)
	}
}

// buildGitHubWidget fetches what it can and composes the widget. Missing
// pieces degrade the widget instead of dropping it; only a failed profile
// fetch gives up on the source entirely.
func buildGitHubWidget(ctx context.Context, cfg *config.Config, store *cache.Cache, now time.Time) *github.Widget {
	client := github.NewClient(ctx, cfg.Token, store, cfg.MaxWorkers)

	if cfg.Token != "" {
		checkRateLimit(client)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Fetching GitHub activity for %s...", cfg.GitHubUser)
	s.Start()

	data := github.Data{}
	var err error

	data.Profile, err = client.GetUser(cfg.GitHubUser)
	if err != nil {
		s.Stop()
		display.DisplayWarning(fmt.Sprintf("GitHub profile unavailable: %v", err))
		return nil
	}

	if data.Repositories, err = client.GetRepositories(cfg.GitHubUser); err != nil {
		display.DisplayWarning(fmt.Sprintf("GitHub repositories unavailable: %v", err))
	}
	if data.Events, err = client.GetEvents(cfg.GitHubUser); err != nil {
		display.DisplayWarning(fmt.Sprintf("GitHub events unavailable: %v", err))
	}

	data.Contributions, err = client.GetContributions(cfg.GitHubUser, cfg.Year)
	if err != nil && !errors.Is(err, github.ErrNoToken) {
		display.DisplayWarning(fmt.Sprintf("Contribution calendar unavailable: %v", err))
	}
	data.MultiYear, err = client.GetMultiYearContributions(cfg.GitHubUser)
	if err != nil && !errors.Is(err, github.ErrNoToken) {
		display.DisplayWarning(fmt.Sprintf("Contribution history unavailable: %v", err))
	}

	s.Stop()

	widget, err := github.BuildWidget(data, cfg.Year, now)
	if err != nil {
		display.DisplayError(fmt.Sprintf("Failed to derive GitHub widget: %v", err))
		return nil
	}

	display.DisplaySuccess(fmt.Sprintf("GitHub activity loaded for @%s", cfg.GitHubUser))
	return widget
}

func buildCodewarsWidget(ctx context.Context, cfg *config.Config, store *cache.Cache, now time.Time) *codewars.Widget {
	client := codewars.NewClient(ctx, store)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Fetching Codewars activity for %s...", cfg.CodewarsUser)
	s.Start()

	user, err := client.GetUser(cfg.CodewarsUser)
	if err != nil {
		s.Stop()
		display.DisplayWarning(fmt.Sprintf("Codewars profile unavailable: %v", err))
		return nil
	}

	challenges, err := client.GetCompletedChallenges(cfg.CodewarsUser)
	if err != nil {
		display.DisplayWarning(fmt.Sprintf("Codewars challenges unavailable: %v", err))
	}

	s.Stop()

	widget, err := codewars.BuildWidget(user, challenges, cfg.Year, now)
	if err != nil {
		display.DisplayError(fmt.Sprintf("Failed to derive Codewars widget: %v", err))
		return nil
	}

	display.DisplaySuccess(fmt.Sprintf("Codewars activity loaded for @%s", cfg.CodewarsUser))
	return widget
}

func checkRateLimit(client *github.Client) {
	limits, err := client.CheckRateLimit()
	if err != nil {
		display.DisplayWarning(fmt.Sprintf("Rate limit check failed: %v", err))
		return
	}

	if limits.Core != nil {
		remaining := limits.Core.Remaining
		limit := limits.Core.Limit
		reset := limits.Core.Reset.Time

		if remaining < 100 {
			display.DisplayWarning(fmt.Sprintf(
				"API Rate Limit: %d/%d remaining (resets at %s)",
				remaining, limit, reset.Format("15:04:05"),
			))
		}
	}
}
