package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// WalletAddrLen is the number of address characters kept in a wallet label.
// Every chain's fingerprint routine truncates to this width.
const WalletAddrLen = 10

// TrType is the kind of a classified transaction record.
type TrType string

const (
	TrDeposit    TrType = "Deposit"
	TrWithdrawal TrType = "Withdrawal"
	TrSpend      TrType = "Spend"
)

// TransactionRecord is the canonical output of row classification.
// Build it with NewDeposit, NewWithdrawal or NewSpend so the buy/sell/fee
// sides stay consistent with the record type.
type TransactionRecord struct {
	Type         TrType           `json:"type"`
	Timestamp    time.Time        `json:"timestamp"`
	BuyQuantity  *decimal.Decimal `json:"buy_quantity,omitempty"`
	BuyAsset     string           `json:"buy_asset,omitempty"`
	SellQuantity *decimal.Decimal `json:"sell_quantity,omitempty"`
	SellAsset    string           `json:"sell_asset,omitempty"`
	FeeQuantity  *decimal.Decimal `json:"fee_quantity,omitempty"`
	FeeAsset     string           `json:"fee_asset,omitempty"`
	Wallet       string           `json:"wallet"`
	Note         string           `json:"note,omitempty"`
}

// NewDeposit returns a record with only a buy side.
func NewDeposit(ts time.Time, quantity decimal.Decimal, asset, wallet, note string) *TransactionRecord {
	return &TransactionRecord{
		Type:        TrDeposit,
		Timestamp:   ts,
		BuyQuantity: &quantity,
		BuyAsset:    asset,
		Wallet:      wallet,
		Note:        note,
	}
}

// NewWithdrawal returns a record with a sell side and an optional fee.
// A nil fee leaves the fee side empty; the fee asset is the sell asset.
func NewWithdrawal(ts time.Time, quantity decimal.Decimal, fee *decimal.Decimal, asset, wallet, note string) *TransactionRecord {
	return newSellRecord(TrWithdrawal, ts, quantity, fee, asset, wallet, note)
}

// NewSpend returns a record with a sell side and an optional fee.
func NewSpend(ts time.Time, quantity decimal.Decimal, fee *decimal.Decimal, asset, wallet, note string) *TransactionRecord {
	return newSellRecord(TrSpend, ts, quantity, fee, asset, wallet, note)
}

func newSellRecord(t TrType, ts time.Time, quantity decimal.Decimal, fee *decimal.Decimal, asset, wallet, note string) *TransactionRecord {
	rec := &TransactionRecord{
		Type:         t,
		Timestamp:    ts,
		SellQuantity: &quantity,
		SellAsset:    asset,
		Wallet:       wallet,
		Note:         note,
	}
	if fee != nil {
		f := *fee
		rec.FeeQuantity = &f
		rec.FeeAsset = asset
	}
	return rec
}

// Validate checks the side and sign invariants of the record.
func (r *TransactionRecord) Validate() error {
	if r == nil {
		return fmt.Errorf("record is nil")
	}
	switch r.Type {
	case TrDeposit:
		if r.BuyQuantity == nil {
			return fmt.Errorf("deposit without buy quantity")
		}
		if r.SellQuantity != nil || r.FeeQuantity != nil {
			return fmt.Errorf("deposit with sell or fee side")
		}
	case TrWithdrawal, TrSpend:
		if r.SellQuantity == nil {
			return fmt.Errorf("%s without sell quantity", r.Type)
		}
		if r.BuyQuantity != nil {
			return fmt.Errorf("%s with buy side", r.Type)
		}
	default:
		return fmt.Errorf("unknown record type: %q", r.Type)
	}

	for _, q := range []*decimal.Decimal{r.BuyQuantity, r.SellQuantity, r.FeeQuantity} {
		if q != nil && q.IsNegative() {
			return fmt.Errorf("negative quantity: %s", q.String())
		}
	}
	return nil
}
