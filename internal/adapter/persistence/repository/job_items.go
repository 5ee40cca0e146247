package repository

import (
	"encoding/json"

	"scale_workshop/internal/domain/entities"
)

// Amounts are stored as decimal strings and times as RFC3339Nano strings so
// that values round-trip exactly.

type sparePartItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type inspectionItem struct {
	ID             string          `dynamodbav:"id"`
	ProblemsFound  string          `dynamodbav:"problems_found,omitempty"`
	InspectedBy    string          `dynamodbav:"inspected_by"`
	InspectionDate string          `dynamodbav:"inspection_date"`
	Notes          string          `dynamodbav:"notes,omitempty"`
	SpareParts     []sparePartItem `dynamodbav:"spare_parts"`
	TotalCost      string          `dynamodbav:"total_cost"`
	CreatedAt      string          `dynamodbav:"created_at"`
	UpdatedAt      string          `dynamodbav:"updated_at"`
}

type quotationItem struct {
	ID              string `dynamodbav:"id"`
	QuotationNumber string `dynamodbav:"quotation_number"`
	QuotationDate   string `dynamodbav:"quotation_date"`
	Amount          string `dynamodbav:"amount"`
	PreparedBy      string `dynamodbav:"prepared_by"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

type approvalItem struct {
	ID              string `dynamodbav:"id"`
	LPONumber       string `dynamodbav:"lpo_number,omitempty"`
	ReferenceNumber string `dynamodbav:"reference_number,omitempty"`
	ApprovedBy      string `dynamodbav:"approved_by"`
	ApprovedAt      string `dynamodbav:"approved_at"`
	Notes           string `dynamodbav:"notes,omitempty"`
}

type paymentItem struct {
	ID                 string `dynamodbav:"id"`
	Date               string `dynamodbav:"date"`
	Amount             string `dynamodbav:"amount"`
	Status             string `dynamodbav:"status"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

type invoiceItem struct {
	ID            string        `dynamodbav:"id"`
	InvoiceNumber string        `dynamodbav:"invoice_number"`
	InvoiceDate   string        `dynamodbav:"invoice_date"`
	Amount        string        `dynamodbav:"amount"`
	IssuedBy      string        `dynamodbav:"issued_by"`
	Payments      []paymentItem `dynamodbav:"payments,omitempty"`
	CreatedAt     string        `dynamodbav:"created_at"`
	UpdatedAt     string        `dynamodbav:"updated_at"`
}

type deliveryItem struct {
	ID           string `dynamodbav:"id"`
	DeliveryDate string `dynamodbav:"delivery_date"`
	DeliveredBy  string `dynamodbav:"delivered_by"`
	ReceivedBy   string `dynamodbav:"received_by,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
}

type cancellationItem struct {
	At     string `dynamodbav:"at"`
	By     string `dynamodbav:"by"`
	Reason string `dynamodbav:"reason,omitempty"`
}

type statusChangeItem struct {
	From string `dynamodbav:"from,omitempty"`
	To   string `dynamodbav:"to"`
	At   string `dynamodbav:"at"`
	By   string `dynamodbav:"by"`
	Note string `dynamodbav:"note,omitempty"`
}

type jobItem struct {
	ID              string             `dynamodbav:"id"`
	JobNumber       string             `dynamodbav:"job_number"`
	CustomerID      string             `dynamodbav:"customer_id"`
	CustomerName    string             `dynamodbav:"customer_name"`
	Make            string             `dynamodbav:"equipment_make"`
	Model           string             `dynamodbav:"equipment_model"`
	SerialNumber    string             `dynamodbav:"equipment_serial,omitempty"`
	ReportedProblem string             `dynamodbav:"reported_problem,omitempty"`
	Status          string             `dynamodbav:"status"`
	TakenBy         string             `dynamodbav:"taken_by"`
	ReceivedAt      string             `dynamodbav:"received_at"`
	CreatedAt       string             `dynamodbav:"created_at"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
	Version         int64              `dynamodbav:"version"`
	Inspection      *inspectionItem    `dynamodbav:"inspection,omitempty"`
	Quotation       *quotationItem     `dynamodbav:"quotation,omitempty"`
	Approval        *approvalItem      `dynamodbav:"approval,omitempty"`
	Invoice         *invoiceItem       `dynamodbav:"invoice,omitempty"`
	Delivery        *deliveryItem      `dynamodbav:"delivery,omitempty"`
	Cancellation    *cancellationItem  `dynamodbav:"cancellation,omitempty"`
	History         []statusChangeItem `dynamodbav:"history,omitempty"`
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:              j.ID,
		JobNumber:       j.JobNumber,
		CustomerID:      j.CustomerID,
		CustomerName:    j.CustomerName,
		Make:            j.Equipment.Make,
		Model:           j.Equipment.Model,
		SerialNumber:    j.Equipment.SerialNumber,
		ReportedProblem: j.ReportedProblem,
		Status:          string(j.Status),
		TakenBy:         j.TakenBy,
		ReceivedAt:      formatTime(j.ReceivedAt),
		CreatedAt:       formatTime(j.CreatedAt),
		UpdatedAt:       formatTime(j.UpdatedAt),
		Version:         j.Version,
	}

	if in := j.Inspection; in != nil {
		parts := make([]sparePartItem, 0, len(in.SpareParts))
		for _, p := range in.SpareParts {
			parts = append(parts, sparePartItem{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Quantity:    p.Quantity,
				UnitPrice:   p.UnitPrice.String(),
			})
		}
		it.Inspection = &inspectionItem{
			ID:             in.ID,
			ProblemsFound:  in.ProblemsFound,
			InspectedBy:    in.InspectedBy,
			InspectionDate: formatTime(in.InspectionDate),
			Notes:          in.Notes,
			SpareParts:     parts,
			TotalCost:      in.TotalCost.String(),
			CreatedAt:      formatTime(in.CreatedAt),
			UpdatedAt:      formatTime(in.UpdatedAt),
		}
	}
	if q := j.Quotation; q != nil {
		it.Quotation = &quotationItem{
			ID:              q.ID,
			QuotationNumber: q.QuotationNumber,
			QuotationDate:   formatTime(q.QuotationDate),
			Amount:          q.Amount.String(),
			PreparedBy:      q.PreparedBy,
			CreatedAt:       formatTime(q.CreatedAt),
			UpdatedAt:       formatTime(q.UpdatedAt),
		}
	}
	if a := j.Approval; a != nil {
		it.Approval = &approvalItem{
			ID:              a.ID,
			LPONumber:       a.LPONumber,
			ReferenceNumber: a.ReferenceNumber,
			ApprovedBy:      a.ApprovedBy,
			ApprovedAt:      formatTime(a.ApprovedAt),
			Notes:           a.Notes,
		}
	}
	if inv := j.Invoice; inv != nil {
		payments := make([]paymentItem, 0, len(inv.Payments))
		for _, p := range inv.Payments {
			payments = append(payments, paymentItem{
				ID:                 p.ID,
				Date:               formatTime(p.Date),
				Amount:             p.Amount.String(),
				Status:             string(p.Status),
				ProviderPayloadRaw: string(p.ProviderPayloadRaw),
			})
		}
		it.Invoice = &invoiceItem{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   formatTime(inv.InvoiceDate),
			Amount:        inv.Amount.String(),
			IssuedBy:      inv.IssuedBy,
			Payments:      payments,
			CreatedAt:     formatTime(inv.CreatedAt),
			UpdatedAt:     formatTime(inv.UpdatedAt),
		}
	}
	if d := j.Delivery; d != nil {
		it.Delivery = &deliveryItem{
			ID:           d.ID,
			DeliveryDate: formatTime(d.DeliveryDate),
			DeliveredBy:  d.DeliveredBy,
			ReceivedBy:   d.ReceivedBy,
			Notes:        d.Notes,
		}
	}
	if c := j.Cancellation; c != nil {
		it.Cancellation = &cancellationItem{At: formatTime(c.At), By: c.By, Reason: c.Reason}
	}
	for _, h := range j.History {
		it.History = append(it.History, statusChangeItem{
			From: string(h.From),
			To:   string(h.To),
			At:   formatTime(h.At),
			By:   h.By,
			Note: h.Note,
		})
	}
	return it
}

func fromJobItem(it jobItem) (entities.Job, error) {
	dec := &itemDecoder{entity: "job", id: it.ID}
	j := entities.Job{
		ID:           it.ID,
		JobNumber:    it.JobNumber,
		CustomerID:   it.CustomerID,
		CustomerName: it.CustomerName,
		Equipment: entities.Equipment{
			Make:         it.Make,
			Model:        it.Model,
			SerialNumber: it.SerialNumber,
		},
		ReportedProblem: it.ReportedProblem,
		Status:          entities.JobStatus(it.Status),
		TakenBy:         it.TakenBy,
		ReceivedAt:      dec.time("received_at", it.ReceivedAt),
		CreatedAt:       dec.time("created_at", it.CreatedAt),
		UpdatedAt:       dec.time("updated_at", it.UpdatedAt),
		Version:         it.Version,
	}

	if in := it.Inspection; in != nil {
		parts := make([]entities.SparePart, 0, len(in.SpareParts))
		for _, p := range in.SpareParts {
			parts = append(parts, entities.SparePart{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Quantity:    p.Quantity,
				UnitPrice:   dec.amount("inspection.spare_parts.unit_price", p.UnitPrice),
			})
		}
		j.Inspection = &entities.Inspection{
			ID:             in.ID,
			JobID:          it.ID,
			ProblemsFound:  in.ProblemsFound,
			InspectedBy:    in.InspectedBy,
			InspectionDate: dec.time("inspection.inspection_date", in.InspectionDate),
			Notes:          in.Notes,
			SpareParts:     parts,
			TotalCost:      dec.amount("inspection.total_cost", in.TotalCost),
			CreatedAt:      dec.time("inspection.created_at", in.CreatedAt),
			UpdatedAt:      dec.time("inspection.updated_at", in.UpdatedAt),
		}
	}
	if q := it.Quotation; q != nil {
		j.Quotation = &entities.Quotation{
			ID:              q.ID,
			JobID:           it.ID,
			QuotationNumber: q.QuotationNumber,
			QuotationDate:   dec.time("quotation.quotation_date", q.QuotationDate),
			Amount:          dec.amount("quotation.amount", q.Amount),
			PreparedBy:      q.PreparedBy,
			CreatedAt:       dec.time("quotation.created_at", q.CreatedAt),
			UpdatedAt:       dec.time("quotation.updated_at", q.UpdatedAt),
		}
	}
	if a := it.Approval; a != nil {
		j.Approval = &entities.Approval{
			ID:              a.ID,
			JobID:           it.ID,
			LPONumber:       a.LPONumber,
			ReferenceNumber: a.ReferenceNumber,
			ApprovedBy:      a.ApprovedBy,
			ApprovedAt:      dec.time("approval.approved_at", a.ApprovedAt),
			Notes:           a.Notes,
		}
	}
	if inv := it.Invoice; inv != nil {
		var payments []entities.InvoicePayment
		for _, p := range inv.Payments {
			payment := entities.InvoicePayment{
				ID:     p.ID,
				Date:   dec.time("invoice.payments.date", p.Date),
				Amount: dec.amount("invoice.payments.amount", p.Amount),
				Status: entities.PaymentStatus(p.Status),
			}
			if p.ProviderPayloadRaw != "" {
				payment.ProviderPayloadRaw = json.RawMessage(p.ProviderPayloadRaw)
			}
			payments = append(payments, payment)
		}
		j.Invoice = &entities.Invoice{
			ID:            inv.ID,
			JobID:         it.ID,
			InvoiceNumber: inv.InvoiceNumber,
			InvoiceDate:   dec.time("invoice.invoice_date", inv.InvoiceDate),
			Amount:        dec.amount("invoice.amount", inv.Amount),
			IssuedBy:      inv.IssuedBy,
			Payments:      payments,
			CreatedAt:     dec.time("invoice.created_at", inv.CreatedAt),
			UpdatedAt:     dec.time("invoice.updated_at", inv.UpdatedAt),
		}
	}
	if d := it.Delivery; d != nil {
		j.Delivery = &entities.Delivery{
			ID:           d.ID,
			JobID:        it.ID,
			DeliveryDate: dec.time("delivery.delivery_date", d.DeliveryDate),
			DeliveredBy:  d.DeliveredBy,
			ReceivedBy:   d.ReceivedBy,
			Notes:        d.Notes,
		}
	}
	if c := it.Cancellation; c != nil {
		j.Cancellation = &entities.Cancellation{At: dec.time("cancellation.at", c.At), By: c.By, Reason: c.Reason}
	}
	for _, h := range it.History {
		j.History = append(j.History, entities.StatusChange{
			From: entities.JobStatus(h.From),
			To:   entities.JobStatus(h.To),
			At:   dec.time("history.at", h.At),
			By:   h.By,
			Note: h.Note,
		})
	}
	if dec.err != nil {
		return entities.Job{}, dec.err
	}
	return j, nil
}
