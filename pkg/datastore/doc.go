// Package datastore keeps the prereq ledgers redo-ifchange writes.
//
// A ledger is a plain text file next to a parent target, named by
// appending the ledger suffix (".prereq" by default) to the parent's path.
// It holds one dependency name per line, in first-recorded order, and
// never holds the same name twice. Ledgers are shared by every recipe
// process that reports dependencies for the same parent, so updates take an
// flock on the ledger itself.
package datastore
