package importer

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"explorerLedger/internal/model"
	"explorerLedger/internal/schema"
)

// buildTxRaw extracts the hash and address cells named by the schema.
// Well-formed addresses are rewritten in checksum form; anything else is kept verbatim.
func buildTxRaw(pos model.TxRawPosition, row schema.RawRow) model.TxRaw {
	return model.TxRaw{
		Position: pos,
		TxHash:   normalizeTxHash(row.At(pos.TxHash)),
		From:     normalizeAddress(row.At(pos.From)),
		To:       normalizeAddress(row.At(pos.To)),
	}
}

func normalizeAddress(input string) string {
	input = strings.TrimSpace(input)
	if !common.IsHexAddress(input) {
		return input
	}
	return common.HexToAddress(input).Hex()
}

func normalizeTxHash(input string) string {
	input = strings.TrimSpace(input)
	data, err := hexutil.Decode(input)
	if err != nil || len(data) != common.HashLength {
		return input
	}
	return common.BytesToHash(data).Hex()
}
