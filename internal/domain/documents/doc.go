// Package documents defines the trade document taxonomy: the recognized
// document types, filename based type detection and page numbering, and the
// registry of fields to extract per document type.
package documents
