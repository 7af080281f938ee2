// Package storage contains the persistence backends a store can keep its
// snapshot blob in.
//
// The canonical contract is Backend: load one blob, save one blob, close.
// Implementations in this package cover a flat file (the default), process
// memory and a SQLite database file. Callers should depend on the interface
// rather than concrete types so backends can be substituted in tests or
// swapped for durable ones without touching calling code.
package storage
