package interfaces

import "scale_workshop/internal/domain/documents"

// IDocumentRenderer turns composed documents into downloadable files.
type IDocumentRenderer interface {
	PreviewPDF(doc documents.PreviewDoc) ([]byte, error)
	QuotationPDF(doc documents.QuotationDoc) ([]byte, error)
	RegisterWorkbook(rows []documents.RegisterRow) ([]byte, error)
}
