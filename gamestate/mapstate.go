package gamestate

type Team string

const (
	TeamNone    Team = "none"
	TeamRadiant Team = "radiant"
	TeamDire    Team = "dire"
)

// GameRulesState is the raw DOTA_GAMERULES_STATE_* value as sent by the game.
type GameRulesState string

const (
	StateDisconnect        GameRulesState = "DOTA_GAMERULES_STATE_DISCONNECT"
	StateInit              GameRulesState = "DOTA_GAMERULES_STATE_INIT"
	StateHeroSelection     GameRulesState = "DOTA_GAMERULES_STATE_HERO_SELECTION"
	StateStrategyTime      GameRulesState = "DOTA_GAMERULES_STATE_STRATEGY_TIME"
	StateWaitForMap        GameRulesState = "DOTA_GAMERULES_STATE_WAIT_FOR_MAP_TO_LOAD"
	StateWaitForPlayers    GameRulesState = "DOTA_GAMERULES_STATE_WAIT_FOR_PLAYERS_TO_LOAD"
	StatePreGame           GameRulesState = "DOTA_GAMERULES_STATE_PRE_GAME"
	StateInProgress        GameRulesState = "DOTA_GAMERULES_STATE_GAME_IN_PROGRESS"
	StatePostGame          GameRulesState = "DOTA_GAMERULES_STATE_POST_GAME"
	StateCustomGameSetup   GameRulesState = "DOTA_GAMERULES_STATE_CUSTOM_GAME_SETUP"
	StateLast              GameRulesState = "DOTA_GAMERULES_STATE_LAST"
)

type Map struct {
	Name                 string         `json:"name"`
	MatchID              string         `json:"matchid"`
	GameTime             int            `json:"game_time"`
	ClockTime            int            `json:"clock_time"`
	Daytime              bool           `json:"daytime"`
	NightstalkerNight    bool           `json:"nightstalker_night"`
	GameState            GameRulesState `json:"game_state"`
	Paused               bool           `json:"paused"`
	WinTeam              Team           `json:"win_team"`
	CustomGameName       string         `json:"customgamename"`
	WardPurchaseCooldown int            `json:"ward_purchase_cooldown"`
}
