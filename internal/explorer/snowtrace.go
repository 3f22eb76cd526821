package explorer

import (
	"explorerLedger/internal/model"
	"explorerLedger/internal/schema"
)

// Avalanche is the SnowTrace (Avalanche C-Chain) explorer.
var Avalanche = model.Chain{
	Label:     "Avalanche chain",
	Asset:     "AVAX",
	Worksheet: "SnowTrace",
}

var (
	txPositions       = model.TxRawPosition{TxHash: 0, From: 4, To: 5}
	internalPositions = model.TxRawPosition{TxHash: 0, From: 7, To: 8}
)

// SnowTraceSchemas returns every known SnowTrace export layout for chain,
// newest first within each report type.
func SnowTraceSchemas(chain model.Chain) []schema.ColumnSchema {
	txName := "SnowTrace (" + chain.Asset + " Transactions)"
	intName := "SnowTrace (" + chain.Asset + " Internal Transactions)"

	txHash := schema.OneOf(colTxHash, colTxHashRenamed)
	dateTime := schema.OneOf(colDateTime, colDateTimeUTC)

	txColumns := func(hash, date schema.Column, extra ...string) []schema.Column {
		cols := []schema.Column{
			hash,
			schema.Exact(colBlockNo),
			schema.Exact(colUnixTimestamp),
			date,
			schema.Exact(colFrom),
			schema.Exact(colTo),
			schema.Exact(colContract),
			schema.Exact(valueInColumn(chain.Asset)),
			schema.Exact(valueOutColumn(chain.Asset)),
			schema.Any(), // CurrentValue @ $<price>/<asset>
			schema.Exact(txnFeeColumn(chain.Asset)),
			schema.Exact(colTxnFeeUSD),
			schema.Exact(priceColumn(chain.Asset)),
			schema.Exact(colStatus),
			schema.Exact(colErrCode),
		}
		for _, name := range extra {
			cols = append(cols, schema.Exact(name))
		}
		return cols
	}

	internalColumns := func(extra ...string) []schema.Column {
		cols := []schema.Column{
			txHash,
			schema.Exact(colBlockNo),
			schema.Exact(colUnixTimestamp),
			dateTime,
			schema.Exact(colParentTxFrom),
			schema.Exact(colParentTxTo),
			schema.Exact(colParentTxValue),
			schema.Exact(colFrom),
			schema.Exact(colTxTo),
			schema.Exact(colContract),
			schema.Exact(valueInColumn(chain.Asset)),
			schema.Exact(valueOutColumn(chain.Asset)),
			schema.Any(),
			schema.Exact(priceColumn(chain.Asset)),
			schema.Exact(colStatus),
			schema.Exact(colErrCode),
			schema.Exact(colType),
		}
		for _, name := range extra {
			cols = append(cols, schema.Exact(name))
		}
		return cols
	}

	tx := func(cols []schema.Column) schema.ColumnSchema {
		return schema.ColumnSchema{
			Name:    txName,
			Chain:   chain,
			Handler: schema.HandlerTransactions,
			Columns: cols,
			TxRaw:   txPositions,
		}
	}
	internal := func(cols []schema.Column) schema.ColumnSchema {
		return schema.ColumnSchema{
			Name:    intName,
			Chain:   chain,
			Handler: schema.HandlerInternal,
			Columns: cols,
			TxRaw:   internalPositions,
		}
	}

	return []schema.ColumnSchema{
		tx(txColumns(txHash, dateTime, colMethod)),
		tx(txColumns(txHash, dateTime, colMethod, colPrivateNote)),
		tx(txColumns(schema.Exact(colTxHash), schema.Exact(colDateTime))),
		tx(txColumns(schema.Exact(colTxHash), schema.Exact(colDateTime), colPrivateNote)),
		internal(internalColumns()),
		internal(internalColumns(colPrivateNote)),
	}
}

var defaultRegistry = schema.MustRegistry(SnowTraceSchemas(Avalanche)...)

// DefaultRegistry returns the registry of all built-in explorer layouts.
func DefaultRegistry() *schema.Registry {
	return defaultRegistry
}
