package gamestate

type Player struct {
	SteamID        string `json:"steamid"`
	Name           string `json:"name"`
	Activity       string `json:"activity"`
	Kills          int    `json:"kills"`
	Deaths         int    `json:"deaths"`
	Assists        int    `json:"assists"`
	LastHits       int    `json:"last_hits"`
	Denies         int    `json:"denies"`
	KillStreak     int    `json:"kill_streak"`
	CommandsIssued int    `json:"commands_issued"`
	TeamName       Team   `json:"team_name"`
	Gold           int    `json:"gold"`
	GoldReliable   int    `json:"gold_reliable"`
	GoldUnreliable int    `json:"gold_unreliable"`
	GPM            int    `json:"gpm"`
	XPM            int    `json:"xpm"`
}
