// Package nhl provides a typed client for the NHL web API.
//
// The client resolves logical operations (standings, schedules,
// boxscores, player data) to HTTP requests against the NHL's public
// base URLs, classifies failures by status code, and decodes the JSON
// payloads into structures that tolerate schema drift between API
// versions and historical eras.
package nhl
