package codewars

// User is a Codewars profile as returned by /api/v1/users/{username}.
type User struct {
	Username            string `json:"username"`
	Name                string `json:"name"`
	Honor               int    `json:"honor"`
	Clan                string `json:"clan"`
	LeaderboardPosition int    `json:"leaderboardPosition"`
	Skills              []string `json:"skills"`
	Ranks               Ranks  `json:"ranks"`
	CodeChallenges      struct {
		TotalAuthored  int `json:"totalAuthored"`
		TotalCompleted int `json:"totalCompleted"`
	} `json:"codeChallenges"`
}

type Ranks struct {
	Overall   Rank            `json:"overall"`
	Languages map[string]Rank `json:"languages"`
}

type Rank struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Score int    `json:"score"`
}

// Challenge is one completed kata. CompletedAt stays a string until the
// widget builder parses it, so a bad timestamp fails the derivation instead
// of landing in the wrong day.
type Challenge struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Slug               string   `json:"slug"`
	CompletedAt        string   `json:"completedAt"`
	CompletedLanguages []string `json:"completedLanguages"`
}
