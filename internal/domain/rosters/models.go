package rosters

// Entry is one player on a fetched team roster.
type Entry struct {
	Name     string `json:"name"`
	Status   string `json:"status,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Position string `json:"position,omitempty"`
}
