// Package roster loads the static list of pool entries and their golfer picks.
//
// Rosters are read from JSON, YAML or XLSX files, chosen by file extension. JSON and YAML
// files hold a list of {name, picks} objects. An XLSX roster uses its first sheet: a header
// row with a Team (or Name/Entry) column, followed by one row per team with picks in the
// remaining columns.
//
// Every loaded roster is validated: team names must be non-empty and unique.
package roster
