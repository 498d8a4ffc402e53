package datastore

// DataStore records and reports the dependencies declared by recipes.
type DataStore interface {
	// Record appends each child not already present to parent's ledger,
	// creating the ledger if needed. It returns the children that were
	// added, in order.
	Record(parent string, children []string) (added []string, err error)

	// Entries returns the dependencies recorded for parent. A parent
	// without a ledger has none.
	Entries(parent string) ([]string, error)

	// LedgerPath returns where parent's ledger lives.
	LedgerPath(parent string) string
}
