package scoreboard

type eventsResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID            string       `json:"id"`
	Date          string       `json:"date"`
	Status        string       `json:"status"`
	HomeTeam      teamResponse `json:"home_team"`
	AwayTeam      teamResponse `json:"away_team"`
	HomeScore     *int         `json:"home_score"`
	AwayScore     *int         `json:"away_score"`
	Broadcast     string       `json:"broadcast"`
	Headline      string       `json:"headline"`
	HomeProbables []string     `json:"home_probables"`
	AwayProbables []string     `json:"away_probables"`
}

type teamResponse struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Record       string `json:"record"`
	City         string `json:"city"`
	Division     string `json:"division"`
}

type rosterResponse struct {
	Players []playerResponse `json:"players"`
}

type playerResponse struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Detail   string `json:"detail"`
	Position string `json:"position"`
}
