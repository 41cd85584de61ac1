// Package dispatch maps ledger command lines onto searches.
//
// NewApp builds the urfave/cli application used by cmd/ledger. Search
// commands take their arguments raw and parse them against a small
// per-command schema: declared --name value pairs become typed options and
// all remaining tokens form one free-text keyword.
//
// Missing keywords, empty results and unknown commands are reported on the
// output and end successfully. Only data problems (missing or malformed
// tables, an unreadable workbook, bad configuration) are returned as
// errors.
package dispatch
