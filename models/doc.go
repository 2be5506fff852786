// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response and domain types.

# Domain Types

  - Game: a registerable activity with age limit, pre-registration flag,
    zone and time slot
  - Participant: a registrant and the names of their games

Game JSON uses snake_case keys (age_limit, game_zone); participant JSON
uses camelCase keys (firstName, contactNumber), matching the web client.

# Partial Updates

UpdateGameRequest uses pointer fields. A nil field is left unchanged:

	zone := "Zone X"
	req := models.UpdateGameRequest{GameZone: &zone}

# Defaults

Games created without an age limit get DefaultAgeLimit ("All Ages") and
without a pre-registration flag get DefaultPreRegistration ("N").
*/
package models
