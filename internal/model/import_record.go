package model

// TxRawPosition holds header positions of the hash and address columns.
type TxRawPosition struct {
	TxHash int `json:"tx_hash"`
	From   int `json:"from"`
	To     int `json:"to"`
}

// TxRaw keeps the raw hash and address values of a row for traceability.
type TxRaw struct {
	Position TxRawPosition `json:"position"`
	TxHash   string        `json:"tx_hash"`
	From     string        `json:"from"`
	To       string        `json:"to"`
}

// ImportRecord is a classified row ready for a storage sink.
type ImportRecord struct {
	ImportID  string             `json:"import_id"`
	File      string             `json:"file"`
	Line      int                `json:"line"`
	Schema    string             `json:"schema"`
	Worksheet string             `json:"worksheet"`
	TxRaw     TxRaw              `json:"tx_raw"`
	Record    *TransactionRecord `json:"record"`
}

// ImportError records the row that aborted an import.
type ImportError struct {
	ImportID string `json:"import_id"`
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Schema   string `json:"schema,omitempty"`
	Error    string `json:"error"`
}
