// Package feed fetches raw leaderboard rows for the scoring engine.
//
// A Source returns one snapshot of rows per call. Rows come either from a JSON array of
// objects (the shape a spreadsheet web app publishes) or from the first <table> of an HTML
// leaderboard page, whose header cells become the row keys. HTTPSource spaces requests with
// a rate limiter, FileSource reads a saved copy, and BreakerSource stops calling a source
// that keeps failing.
package feed
