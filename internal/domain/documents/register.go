package documents

import (
	"time"

	"scale_workshop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RegisterRow is one line of the jobs register. Amounts are nil for stages
// the job has not reached.
type RegisterRow struct {
	JobNumber       string
	CustomerName    string
	Equipment       string
	Status          entities.JobStatus
	ReceivedAt      time.Time
	InspectionTotal *Money
	QuotedAmount    *Money
	InvoicedAmount  *Money
	Outstanding     *Money
}

// ComposeRegister flattens jobs into register rows, keeping their order.
func (c *Composer) ComposeRegister(jobs []entities.Job) []RegisterRow {
	rows := make([]RegisterRow, 0, len(jobs))
	for _, j := range jobs {
		r := RegisterRow{
			JobNumber:    j.JobNumber,
			CustomerName: j.CustomerName,
			Equipment:    equipmentLabel(j.Equipment),
			Status:       j.Status,
			ReceivedAt:   j.ReceivedAt,
		}
		if j.Inspection != nil {
			r.InspectionTotal = c.moneyRef(j.Inspection.TotalCost)
		}
		if j.Quotation != nil {
			r.QuotedAmount = c.moneyRef(j.Quotation.Amount)
		}
		if j.Invoice != nil {
			r.InvoicedAmount = c.moneyRef(j.Invoice.Amount)
			r.Outstanding = c.moneyRef(j.Invoice.Outstanding())
		}
		rows = append(rows, r)
	}
	return rows
}

func (c *Composer) moneyRef(v decimal.Decimal) *Money {
	m := c.money(v)
	return &m
}

func equipmentLabel(e entities.Equipment) string {
	label := e.Make + " " + e.Model
	if e.SerialNumber != "" {
		label += " (" + e.SerialNumber + ")"
	}
	return label
}
