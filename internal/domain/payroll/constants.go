package payroll

const (
	RunStatusPaid = "PAID"

	// Period keys are opaque YYYY-MM strings. The engine only ever compares
	// them for equality; parsing happens at the transport boundary.
	PeriodFormat = "2006-01"
)
