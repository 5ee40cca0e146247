package entities

// NumberKind names a system-wide unique document number series.
type NumberKind string

const (
	NumberKindJob       NumberKind = "job"
	NumberKindQuotation NumberKind = "quotation"
	NumberKindInvoice   NumberKind = "invoice"
)

// NumberClaim reserves a number for a job. Claims are written in the same
// transaction as the job and are never released.
type NumberClaim struct {
	Kind   NumberKind
	Number string
}

// Field returns the wire name of the number, used in conflict errors.
func (k NumberKind) Field() string {
	return string(k) + "_number"
}
