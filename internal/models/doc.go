// Package models defines the entities shared by every callx layer.
//
//   - [Attribute] : A column the call list can display, registered in the catalog
//   - [Call] : A SIP dialog persisted in the call store and rendered as a table row
//
// [Call.Value] is the single place an attribute token is turned into cell text,
// so the TUI table and the exporters always agree on formatting.
// The [Repository] interface defines the store operations implemented in package repositories.
package models
