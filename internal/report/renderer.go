package report

import (
	"bytes"
	"fmt"
	"strings"
)

// Renderer turns a titled line-oriented report body into a downloadable
// document.
type Renderer interface {
	Render(title string, lines []string) ([]byte, error)
	ContentType() string
	Ext() string
}

type PDFRenderer struct{}

func (PDFRenderer) ContentType() string { return "application/pdf" }
func (PDFRenderer) Ext() string         { return "pdf" }

// Render writes a single-page PDF by hand. Reports are plain text lines, so
// a full PDF library would be overkill here.
func (PDFRenderer) Render(title string, lines []string) ([]byte, error) {
	all := append([]string{title, ""}, lines...)

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range all {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}

// ExcelRenderer emits a tab-separated sheet that spreadsheet apps open
// directly. TODO: switch to a real xlsx writer if consumers need formatting.
type ExcelRenderer struct{}

func (ExcelRenderer) ContentType() string { return "application/vnd.ms-excel" }
func (ExcelRenderer) Ext() string         { return "xls" }

func (ExcelRenderer) Render(title string, lines []string) ([]byte, error) {
	var out bytes.Buffer
	out.WriteString(title + "\n\n")
	for _, line := range lines {
		out.WriteString(strings.ReplaceAll(line, ": ", "\t") + "\n")
	}
	return out.Bytes(), nil
}
