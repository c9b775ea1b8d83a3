package documents

import "errors"

// DocumentTypeCRL represents a customer request letter
const DocumentTypeCRL = "CRL"

// DocumentTypeInvoice represents a commercial, proforma or customs invoice
const DocumentTypeInvoice = "INVOICE"

// DocumentTypePackingList represents a packing list
const DocumentTypePackingList = "PACKING_LIST"

// DocumentTypeBL represents a bill of lading or equivalent transport document
const DocumentTypeBL = "BL"

// DocumentTypeUnknown is returned by the classifier when no acceptable type matches
const DocumentTypeUnknown = "UNKNOWN"

// ErrUnknownDocumentType indicates that no document type could be determined for a filename
var ErrUnknownDocumentType = errors.New("could not determine document type")

// KnownTypes returns every document type the filename detector can produce.
func KnownTypes() []string {
	return []string{DocumentTypeCRL, DocumentTypeInvoice, DocumentTypePackingList, DocumentTypeBL}
}
