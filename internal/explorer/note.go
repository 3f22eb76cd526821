package explorer

import "explorerLedger/internal/schema"

// Note derives the record note from a transaction row. Failed transactions
// are marked as such; otherwise the contract method wins over a private note.
func Note(row schema.RawRow) string {
	method, _ := row.Lookup(colMethod)

	if status, _ := row.Lookup(colStatus); status != "" {
		if method != "" {
			return "Failure (" + method + ")"
		}
		return "Failure"
	}

	if method != "" {
		return method
	}

	privateNote, _ := row.Lookup(colPrivateNote)
	return privateNote
}
