package documents

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	pageSuffixPattern = regexp.MustCompile(`(?i)[ _](\d+)\.pdf$`)
	baseSuffixPattern = regexp.MustCompile(`(?i)[ _]?\d+\.pdf$`)
)

// ParsePageNumber extracts the page number from a PDF filename such as
// "CRL 1.pdf" or "Invoice_2.pdf". Filenames without a numeric suffix default
// to page 1.
func ParsePageNumber(filename string) int {
	m := pageSuffixPattern.FindStringSubmatch(filename)
	if m == nil {
		return 1
	}
	page, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return page
}

// BaseName strips the numeric page suffix from a PDF filename, leaving the
// portion used for document type detection. "CRL 2.pdf" becomes "CRL" while
// "invoice.pdf" is returned unchanged.
func BaseName(filename string) string {
	return baseSuffixPattern.ReplaceAllString(filename, "")
}

// DetectType identifies the document type from filename keywords. Matching is
// case insensitive and only the portion before the first dot is considered,
// so "Invoice.pdf", "INV 3.pdf" and "inv_scan.pdf" all resolve to INVOICE.
func DetectType(filename string) (string, error) {
	name := strings.ToLower(filename)
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}

	switch {
	case strings.Contains(name, "crl"):
		return DocumentTypeCRL, nil
	case strings.Contains(name, "inv"):
		return DocumentTypeInvoice, nil
	case strings.Contains(name, "pack"), strings.Contains(name, "pkg"), strings.Contains(name, "packing"):
		return DocumentTypePackingList, nil
	case strings.Contains(name, "bl"), strings.Contains(name, "bill of lading"):
		return DocumentTypeBL, nil
	default:
		return "", fmt.Errorf("%w for filename: %s", ErrUnknownDocumentType, filename)
	}
}
