// Package notifier announces standings movements between refreshes.
//
// A Notifier receives the movements computed by scoring.Diff after each watch pass.
// WriterNotifier prints one line per movement to any io.Writer (stdout by default),
// and LogNotifier emits them as structured log entries.
package notifier
