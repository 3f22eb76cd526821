package explorer

import (
	"strings"

	"explorerLedger/internal/model"
)

// Wallet returns "<label>-<address>", with the address lowercased and
// truncated to model.WalletAddrLen characters. Malformed addresses are not
// rejected; they simply produce a short label.
func Wallet(label, address string) string {
	addr := []rune(strings.ToLower(address))
	if len(addr) > model.WalletAddrLen {
		addr = addr[:model.WalletAddrLen]
	}
	return label + "-" + string(addr)
}
