package certificate

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/go-pdf/fpdf"
)

type Renderer interface {
	Render(ctx context.Context, rec Record) ([]byte, error)
}

type lineStyle struct {
	family string
	style  string
	size   float64
	height float64
	gap    float64
}

var (
	titleStyle = lineStyle{"Helvetica", "B", 30, 16, 12}
	bodyStyle  = lineStyle{"Helvetica", "", 16, 10, 2}
	nameStyle  = lineStyle{"Times", "BI", 28, 16, 4}
	footStyle  = lineStyle{"Helvetica", "I", 12, 8, 0}
)

type line struct {
	style lineStyle
	tmpl  *template.Template
}

func newLine(style lineStyle, text string) line {
	return line{style: style, tmpl: template.Must(template.New("").Parse(text))}
}

var certificateLines = []line{
	newLine(titleStyle, "Certificate of Completion"),
	newLine(bodyStyle, "This is to certify that"),
	newLine(nameStyle, "{{.Name}}"),
	newLine(bodyStyle, "has successfully completed the DevOps Exam"),
	newLine(bodyStyle, "with a score of {{.Score}} out of {{.Total}}"),
	newLine(footStyle, "Issued on {{.IssueDate}}"),
}

type PDFRenderer struct{}

func NewPDFRenderer() Renderer {
	return PDFRenderer{}
}

func (PDFRenderer) Render(_ context.Context, rec Record) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("DevOps Exam Certificate", true)
	pdf.SetAuthor("DevOps Exam", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	w, h := pdf.GetPageSize()
	pdf.SetDrawColor(40, 70, 120)
	pdf.SetLineWidth(1.5)
	pdf.Rect(10, 10, w-20, h-20, "D")
	pdf.SetLineWidth(0.4)
	pdf.Rect(14, 14, w-28, h-28, "D")

	// Core fonts are cp1252; names may not be.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetY(45)
	for _, l := range certificateLines {
		var buf strings.Builder
		if err := l.tmpl.Execute(&buf, rec); err != nil {
			return nil, fmt.Errorf("render certificate line: %w", err)
		}
		pdf.SetFont(l.style.family, l.style.style, l.style.size)
		pdf.CellFormat(0, l.style.height, tr(buf.String()), "", 1, "C", false, 0, "")
		pdf.Ln(l.style.gap)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write certificate pdf: %w", err)
	}
	return out.Bytes(), nil
}
