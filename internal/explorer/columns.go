package explorer

const (
	colTxHash        = "Txhash"
	colTxHashRenamed = "Transaction Hash"
	colBlockNo       = "Blockno"
	colUnixTimestamp = "UnixTimestamp"
	colDateTime      = "DateTime"
	colDateTimeUTC   = "DateTime (UTC)"
	colFrom          = "From"
	colTo            = "To"
	colTxTo          = "TxTo"
	colParentTxFrom  = "ParentTxFrom"
	colParentTxTo    = "ParentTxTo"
	colParentTxValue = "ParentTxETH_Value"
	colContract      = "ContractAddress"
	colStatus        = "Status"
	colErrCode       = "ErrCode"
	colMethod        = "Method"
	colType          = "Type"
	colPrivateNote   = "PrivateNote"
	colTxnFeeUSD     = "TxnFee(USD)"

	internalStatusOK = "0"
)

func valueInColumn(asset string) string { return "Value_IN(" + asset + ")" }

func valueOutColumn(asset string) string { return "Value_OUT(" + asset + ")" }

func txnFeeColumn(asset string) string { return "TxnFee(" + asset + ")" }

func priceColumn(asset string) string { return "Historical $Price/" + asset }
