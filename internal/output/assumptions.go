package output

// DefaultAssumptions lists the rules behind every distribution, rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Equity percentages apply to the sale price; profit percentages apply to sale price minus project cost",
	"Developers contribute work only; their cash payment is always zero",
	"Each role bonus pool is split equally among the people holding that role",
	"Negotiated model: the property owner receives fixed equity and profit pools outside the cash base",
	"Value-weighted model: the property value times its weight counts as a cash contribution",
	"Role pools with no holder stay unallocated",
}
