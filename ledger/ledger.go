package ledger

// Genesis parameters of the network.
const (
	// Base fee of one operation.
	GenesisBaseFee int64 = 100
	// Base reserve of one account entry.
	GenesisBaseReserve int64 = 1000
	// Total supply of the native asset.
	GenesisTotalSupply int64 = 4500000000000000000
)

// Maximum number of operations in one transaction.
const MaxOpCount = 100

// Maximum length of the transaction note.
const MaxNoteLength = 128
