package explorer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"explorerLedger/internal/model"
	"explorerLedger/internal/schema"
)

// Classify runs the classifier selected by the schema's handler.
// A nil record with a nil error means the row produces no record.
func Classify(s schema.ColumnSchema, row schema.RawRow) (*model.TransactionRecord, error) {
	switch s.Handler {
	case schema.HandlerTransactions:
		return ClassifyTransaction(row, s.Chain)
	case schema.HandlerInternal:
		return ClassifyInternal(row, s.Chain)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandler, s.Handler)
	}
}

// ClassifyTransaction classifies a row of the explorer's transaction export.
//
// An empty status means success. A failed transaction never moves value out,
// so its outbound value is treated as zero. Precedence:
//   - inbound > 0 and succeeded: Deposit to the "To" wallet
//   - inbound > 0 and failed: no record
//   - outbound > 0: Withdrawal with fee from the "From" wallet
//   - otherwise: Spend of zero, the fee is still paid
func ClassifyTransaction(row schema.RawRow, chain model.Chain) (*model.TransactionRecord, error) {
	ts, err := ParseTimestamp(row.Field(colUnixTimestamp))
	if err != nil {
		return nil, err
	}

	failed := row.Field(colStatus) != ""

	valueIn, err := parseQuantity(row, valueInColumn(chain.Asset))
	if err != nil {
		return nil, err
	}

	valueOut := decimal.Zero
	if !failed {
		valueOut, err = parseQuantity(row, valueOutColumn(chain.Asset))
		if err != nil {
			return nil, err
		}
	}

	if valueIn.IsPositive() {
		if failed {
			return nil, nil
		}
		return model.NewDeposit(ts, valueIn, chain.Asset, Wallet(chain.Label, row.Field(colTo)), Note(row)), nil
	}

	fee, err := parseQuantity(row, txnFeeColumn(chain.Asset))
	if err != nil {
		return nil, err
	}
	wallet := Wallet(chain.Label, row.Field(colFrom))

	if valueOut.IsPositive() {
		return model.NewWithdrawal(ts, valueOut, &fee, chain.Asset, wallet, Note(row)), nil
	}
	return model.NewSpend(ts, decimal.Zero, &fee, chain.Asset, wallet, Note(row)), nil
}

// ClassifyInternal classifies a row of the explorer's internal transaction
// export. Status "0" means success; any other status yields no record.
// Internal rows never carry a fee or a note.
func ClassifyInternal(row schema.RawRow, chain model.Chain) (*model.TransactionRecord, error) {
	ts, err := ParseTimestamp(row.Field(colUnixTimestamp))
	if err != nil {
		return nil, err
	}

	if row.Field(colStatus) != internalStatusOK {
		return nil, nil
	}

	valueIn, err := parseQuantity(row, valueInColumn(chain.Asset))
	if err != nil {
		return nil, err
	}
	if valueIn.IsPositive() {
		return model.NewDeposit(ts, valueIn, chain.Asset, Wallet(chain.Label, row.Field(colTxTo)), ""), nil
	}

	valueOut, err := parseQuantity(row, valueOutColumn(chain.Asset))
	if err != nil {
		return nil, err
	}
	if valueOut.IsPositive() {
		return model.NewWithdrawal(ts, valueOut, nil, chain.Asset, Wallet(chain.Label, row.Field(colFrom)), ""), nil
	}
	return nil, nil
}
