// Package tasks runs long call store operations with real-time progress reporting.
//
// # Importing
//
// [Importer] reads a JSON array of calls and stores each one through a [models.Repository].
// Calls whose SIP Call-ID is already stored are skipped, so importing the same dump twice is harmless.
// Calls that fail validation are counted and reported without stopping the import.
//
// # Progress Reporting
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking, and a nil channel disables reporting.
package tasks
