// Package repositories implements SQLite persistence for the call store.
//
// [CallRepository] implements [models.Repository] for [models.Call]. Every stored call receives a
// UUID primary key and a sequence number drawn from the calls_sequence table by [NextSequence].
// The sequence is what the call list shows in its index column.
package repositories
