// Package report renders consolidated extraction results into spreadsheet
// workbooks. Column order is derived from the document field catalog so
// reports stay stable across runs regardless of map iteration order.
package report
