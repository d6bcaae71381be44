// Package gsi implements a server for Dota 2 game state integration: it
// listens for the JSON snapshots the game posts over HTTP and hands them to
// registered handlers.
//
// Enabling game state integration requires a configuration file in the Dota 2
// cfg directory, named with a gamestate_integration_ prefix, and running the
// game with the -gamestateintegration launch option:
//
//	"dota2-gsi Configuration"
//	{
//	    "uri"               "http://127.0.0.1:53000/"
//	    "timeout"           "5.0"
//	    "buffer"            "0.1"
//	    "throttle"          "0.1"
//	    "heartbeat"         "30.0"
//	    "data"
//	    {
//	        "buildings"     "1"
//	        "provider"      "1"
//	        "map"           "1"
//	        "player"        "1"
//	        "hero"          "1"
//	        "abilities"     "1"
//	        "items"         "1"
//	        "draft"         "1"
//	        "wearables"     "1"
//	    }
//	    "auth"
//	    {
//	        "token"         "abcdefghijklmopqrstuvxyz123456789"
//	    }
//	}
//
// The uri value must match the address the Server is constructed with. All
// the other values, including timeout, buffer, throttle and heartbeat, are
// read by the game only: they shape the traffic that arrives, but the server
// does not parse or enforce them.
//
// The game posts one snapshot per connection and expects a 200 reply;
// undelivered replies make it retry the same snapshot indefinitely.
package gsi
