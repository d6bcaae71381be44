package gamestate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `{
	"provider": {
		"name": "Dota 2",
		"appid": 570,
		"version": 47,
		"timestamp": 1688514013
	},
	"map": {
		"name": "start",
		"matchid": "7391385291",
		"game_time": 212,
		"clock_time": 151,
		"daytime": true,
		"nightstalker_night": false,
		"game_state": "DOTA_GAMERULES_STATE_GAME_IN_PROGRESS",
		"paused": false,
		"win_team": "none",
		"customgamename": "",
		"ward_purchase_cooldown": 0
	},
	"player": {
		"steamid": "76561198000000000",
		"name": "player",
		"activity": "playing",
		"kills": 2,
		"deaths": 1,
		"assists": 3,
		"last_hits": 40,
		"denies": 5,
		"kill_streak": 2,
		"team_name": "radiant",
		"gold": 1200,
		"gold_reliable": 400,
		"gold_unreliable": 800,
		"gpm": 390,
		"xpm": 420
	},
	"hero": {
		"id": 44,
		"name": "npc_dota_hero_phantom_assassin",
		"level": 7,
		"alive": true,
		"health": 820,
		"max_health": 940,
		"health_percent": 87,
		"break": false
	},
	"abilities": {
		"ability0": {"name": "phantom_assassin_stifling_dagger", "level": 3, "can_cast": true, "passive": false, "ability_active": true, "cooldown": 0, "ultimate": false}
	},
	"items": {
		"slot0": {"name": "item_phase_boots", "purchaser": 0, "can_cast": true, "cooldown": 0, "passive": false, "charges": 0},
		"slot1": {"name": "empty"}
	},
	"buildings": {
		"radiant": {
			"dota_goodguys_tower1_top": {"health": 1400, "max_health": 1800}
		}
	},
	"draft": {},
	"auth": {"token": "hello1234"}
}`

func TestParse(t *testing.T) {
	state, err := Parse([]byte(sampleSnapshot))
	require.NoError(t, err)

	require.Equal(t, "Dota 2", state.Provider.Name)
	require.Equal(t, 570, state.Provider.AppID)

	require.Equal(t, StateInProgress, state.Map.GameState)
	require.Equal(t, TeamNone, state.Map.WinTeam)

	require.Equal(t, TeamRadiant, state.Player.TeamName)
	require.Equal(t, 2, state.Player.Kills)

	require.Equal(t, "npc_dota_hero_phantom_assassin", state.Hero.Name)
	require.True(t, state.Hero.Alive)

	require.Equal(t, 3, state.Abilities["ability0"].Level)
	require.Equal(t, "empty", state.Items["slot1"].Name)
	require.Equal(t, 1400, state.Buildings[TeamRadiant]["dota_goodguys_tower1_top"].Health)
	require.Equal(t, "hello1234", state.Auth.Token)
	require.Nil(t, state.Wearables)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"provider": `))
	require.Error(t, err)
}

func TestParseEmptySections(t *testing.T) {
	state, err := Parse([]byte(`{"provider": {"name": "Dota 2"}, "player": {}, "draft": {}}`))
	require.NoError(t, err)
	require.NotNil(t, state.Player)
	require.Nil(t, state.Hero)
	require.Zero(t, state.Player.Kills)
}
