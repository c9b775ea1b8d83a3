// Package pdfinspect reads structural markers out of PDF files without fully
// parsing them. Intake uses it to sanity check page files before they are
// sent for extraction.
package pdfinspect

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrNotPDF indicates the data does not start with a PDF header line
var ErrNotPDF = errors.New("not a pdf document")

// Info holds the markers found in one PDF file. PageCount only covers page
// objects visible in the raw bytes; pages stored inside compressed object
// streams are not counted.
type Info struct {
	Version   string
	PageCount int
	Encrypted bool
}

var (
	pageObjectPattern  = regexp.MustCompile(`/Type\s*/Page\b`)
	encryptDictPattern = regexp.MustCompile(`/Encrypt\b`)
)

// Inspect scans data for PDF markers
func Inspect(data []byte) (*Info, error) {
	version := headerVersion(data)
	if version == "" {
		return nil, ErrNotPDF
	}

	return &Info{
		Version:   version,
		PageCount: len(pageObjectPattern.FindAll(data, -1)),
		Encrypted: encryptDictPattern.Match(data),
	}, nil
}

// InspectFile reads the file at path and scans it for PDF markers
func InspectFile(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Inspect(data)
}

func headerVersion(data []byte) string {
	head := data
	if len(head) > 64 {
		head = head[:64]
	}
	line := string(head)
	for _, sep := range []string{"\r\n", "\n", "\r"} {
		if idx := strings.Index(line, sep); idx >= 0 {
			line = line[:idx]
			break
		}
	}
	if strings.HasPrefix(line, "%PDF-") && len(line) >= 8 {
		return strings.TrimSpace(line[5:])
	}
	return ""
}
