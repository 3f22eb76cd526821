package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"explorerLedger/internal/model"
)

// RecordRow is the flat column form of an ImportRecord used by SQL sinks.
// Quantities are decimal text so numeric columns keep full precision.
type RecordRow struct {
	ImportID     string
	File         string
	Line         int
	Schema       string
	Worksheet    string
	TxHash       string
	FromAddress  string
	ToAddress    string
	Type         string
	Timestamp    time.Time
	BuyQuantity  *string
	BuyAsset     *string
	SellQuantity *string
	SellAsset    *string
	FeeQuantity  *string
	FeeAsset     *string
	Wallet       string
	Note         *string
}

// FlattenRecord converts an import record into a RecordRow.
func FlattenRecord(rec model.ImportRecord) RecordRow {
	row := RecordRow{
		ImportID:    rec.ImportID,
		File:        rec.File,
		Line:        rec.Line,
		Schema:      rec.Schema,
		Worksheet:   rec.Worksheet,
		TxHash:      rec.TxRaw.TxHash,
		FromAddress: rec.TxRaw.From,
		ToAddress:   rec.TxRaw.To,
	}
	if rec.Record == nil {
		return row
	}

	tr := rec.Record
	row.Type = string(tr.Type)
	row.Timestamp = tr.Timestamp
	row.BuyQuantity = quantityText(tr.BuyQuantity)
	row.BuyAsset = optionalText(tr.BuyAsset)
	row.SellQuantity = quantityText(tr.SellQuantity)
	row.SellAsset = optionalText(tr.SellAsset)
	row.FeeQuantity = quantityText(tr.FeeQuantity)
	row.FeeAsset = optionalText(tr.FeeAsset)
	row.Wallet = tr.Wallet
	row.Note = optionalText(tr.Note)
	return row
}

func quantityText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
