// Package render turns composed documents into files: PDF job sheets and
// quotations with maroto, and the jobs register workbook with excelize.
// Nothing here computes amounts; every figure comes from the document.
package render

import (
	"fmt"
	"time"

	"scale_workshop/internal/domain/documents"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const dateLayout = "02 Jan 2006"

var (
	grey      = &props.Color{Red: 80, Green: 80, Blue: 80}
	headerBg  = &props.Color{Red: 33, Green: 37, Blue: 41}
	white     = &props.Color{Red: 255, Green: 255, Blue: 255}
	stripedBg = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// Renderer holds the letterhead printed on every document.
type Renderer struct {
	workshop string
}

func NewRenderer(workshopName string) *Renderer {
	if workshopName == "" {
		workshopName = "Scale Workshop"
	}
	return &Renderer{workshop: workshopName}
}

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()
	return maroto.New(cfg)
}

// PreviewPDF renders the job sheet.
func (r *Renderer) PreviewPDF(doc documents.PreviewDoc) ([]byte, error) {
	m := newDocument()
	r.addTitle(m, "Job Sheet", doc.Job.JobNumber, doc.ComposedAt)
	addJobSummary(m, doc.Job)
	if doc.Inspection != nil {
		addInspection(m, *doc.Inspection)
		addTotalLine(m, "Total cost", doc.Inspection.TotalCost.Display, true)
	} else {
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New("Not inspected yet.", props.Text{Size: 9, Style: fontstyle.Italic, Color: grey}))))
	}
	return generate(m)
}

// QuotationPDF renders the customer quotation. The grand total is the quoted
// amount; subtotal and tax are printed alongside when available.
func (r *Renderer) QuotationPDF(doc documents.QuotationDoc) ([]byte, error) {
	m := newDocument()
	r.addTitle(m, "Quotation "+doc.QuotationNumber, doc.Job.JobNumber, doc.QuotationDate)
	m.AddRows(row.New(6).Add(
		col.New(12).Add(text.New("Valid until "+doc.ValidUntil.Format(dateLayout), props.Text{Size: 9, Align: align.Right, Color: grey})),
	))
	addJobSummary(m, doc.Job)
	if doc.Inspection != nil {
		addInspection(m, *doc.Inspection)
	}
	if b := doc.Breakdown; b != nil {
		addTotalLine(m, "Subtotal", b.Subtotal.Display, false)
		addTotalLine(m, fmt.Sprintf("Tax (%s%%)", b.TaxRate.Shift(2).String()), b.Tax.Display, false)
	}
	addTotalLine(m, "Total", doc.Total.Display, true)
	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *Renderer) addTitle(m core.Maroto, title, jobNumber string, date time.Time) {
	m.AddRows(
		row.New(8).Add(col.New(12).Add(text.New(r.workshop, props.Text{Size: 10, Style: fontstyle.Bold, Color: grey}))),
		row.New(12).Add(col.New(12).Add(text.New(title, props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}))),
		row.New(8).Add(
			col.New(6).Add(text.New("Job: "+jobNumber, props.Text{Size: 9, Color: grey})),
			col.New(6).Add(text.New("Date: "+date.Format(dateLayout), props.Text{Size: 9, Align: align.Right, Color: grey})),
		),
		row.New(4),
	)
}

func addJobSummary(m core.Maroto, job documents.JobSummary) {
	label := props.Text{Size: 9, Style: fontstyle.Bold}
	value := props.Text{Size: 9}
	fields := [][2]string{
		{"Customer", job.CustomerName},
		{"Equipment", job.Equipment.Make + " " + job.Equipment.Model},
		{"Serial number", job.Equipment.SerialNumber},
		{"Received", job.ReceivedAt.Format(dateLayout)},
		{"Taken by", job.TakenBy},
	}
	if job.ReportedProblem != "" {
		fields = append(fields, [2]string{"Reported problem", job.ReportedProblem})
	}
	for _, f := range fields {
		m.AddRows(row.New(6).Add(
			col.New(3).Add(text.New(f[0], label)),
			col.New(9).Add(text.New(f[1], value)),
		))
	}
	m.AddRows(row.New(4))
}

func addInspection(m core.Maroto, in documents.InspectionSummary) {
	m.AddRows(row.New(8).Add(col.New(12).Add(text.New("Inspection by "+in.InspectedBy+" on "+in.InspectionDate.Format(dateLayout), props.Text{Size: 10, Style: fontstyle.Bold}))))
	if in.ProblemsFound != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(text.New(in.ProblemsFound, props.Text{Size: 9}))))
	}
	if len(in.Lines) == 0 {
		return
	}

	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: white}
	headLeft := head
	headLeft.Align = align.Left
	cell := &props.Cell{BackgroundColor: headerBg}
	m.AddRows(row.New(8).Add(
		col.New(6).Add(text.New("Part", headLeft)).WithStyle(cell),
		col.New(2).Add(text.New("Qty", head)).WithStyle(cell),
		col.New(2).Add(text.New("Unit price", head)).WithStyle(cell),
		col.New(2).Add(text.New("Line total", head)).WithStyle(cell),
	))

	left := props.Text{Size: 8}
	right := props.Text{Size: 8, Align: align.Right}
	for i, l := range in.Lines {
		name := l.Name
		if l.Description != "" {
			name += " - " + l.Description
		}
		cols := []core.Col{
			col.New(6).Add(text.New(name, left)),
			col.New(2).Add(text.New(fmt.Sprintf("%d", l.Quantity), right)),
			col.New(2).Add(text.New(l.UnitPrice.Display, right)),
			col.New(2).Add(text.New(l.LineTotal.Display, right)),
		}
		if i%2 == 1 {
			for j := range cols {
				cols[j] = cols[j].WithStyle(&props.Cell{BackgroundColor: stripedBg})
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}
	m.AddRows(row.New(3))
}

func addTotalLine(m core.Maroto, label, value string, bold bool) {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	m.AddRows(row.New(7).Add(
		col.New(8),
		col.New(2).Add(text.New(label, props.Text{Size: 9, Style: style, Align: align.Right})),
		col.New(2).Add(text.New(value, props.Text{Size: 9, Style: style, Align: align.Right})),
	))
}
