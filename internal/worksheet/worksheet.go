// Package worksheet renders a batch of questions as a printable PDF with an
// answer key on the last page.
package worksheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/ks2maths/internal/problemgen"
)

// Worksheet is one printable set of questions.
type Worksheet struct {
	Title     string
	Module    string
	Level     int
	Questions []*problemgen.Question
}

// Layout constants, in millimetres and points.
const (
	margin     = 18.0
	lineHeight = 7.0
	titleSize  = 20
	bodySize   = 12
	fontFamily = "Helvetica"
)

// asciiFallback replaces characters the cp1252 core fonts cannot show.
var asciiFallback = strings.NewReplacer(
	"−", "-",
	"→", "->",
	"≈", "~",
	"≠", "!=",
	"≤", "<=",
	"≥", ">=",
	"─", "-",
	"│", "|",
	"✓", "v",
	"✗", "x",
)

// ErrEmpty is returned for a worksheet with no questions.
var ErrEmpty = errors.New("worksheet has no questions")

// Render writes ws as a PDF to w.
func Render(ws Worksheet, w io.Writer) error {
	pdf, err := build(ws)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// WriteFile renders ws to path.
func WriteFile(ws Worksheet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(ws, f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

// title returns ws.Title in title case, falling back to the module id.
func (ws Worksheet) title() string {
	t := ws.Title
	if t == "" {
		t = ws.Module
	}
	return cases.Title(language.BritishEnglish).String(t)
}

func build(ws Worksheet) (*fpdf.Fpdf, error) {
	if len(ws.Questions) == 0 {
		return nil, ErrEmpty
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(asciiFallback.Replace(s)) }

	title := ws.title()
	pdf.SetTitle(title, true)
	pdf.SetCreator("ks2maths", false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-margin)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("%s  Level %d  Page %d", ws.Module, ws.Level, pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	heading(pdf, text(title))
	pdf.SetFont(fontFamily, "", bodySize)
	pdf.CellFormat(0, lineHeight, text("Name: ____________________    Date: __________"), "", 1, "L", false, 0, "")
	pdf.Ln(lineHeight)

	for i, q := range ws.Questions {
		pdf.SetFont(fontFamily, "B", bodySize)
		pdf.MultiCell(0, lineHeight, text(fmt.Sprintf("%d. %s", i+1, q.Text)), "", "L", false)
		pdf.SetFont(fontFamily, "", bodySize)
		if q.Format == problemgen.FormatMultipleChoice {
			for j, c := range q.Choices {
				pdf.SetX(margin + 8)
				pdf.MultiCell(0, lineHeight, text(fmt.Sprintf("%s) %s", letter(j), c)), "", "L", false)
			}
		} else {
			pdf.SetX(margin + 8)
			pdf.CellFormat(0, lineHeight, "Answer: ______________", "", 1, "L", false, 0, "")
		}
		pdf.Ln(lineHeight / 2)
	}

	pdf.AddPage()
	heading(pdf, text(title+" - Answers"))
	pdf.SetFont(fontFamily, "", bodySize)
	for i, q := range ws.Questions {
		pdf.MultiCell(0, lineHeight, text(fmt.Sprintf("%d. %s", i+1, keyEntry(q))), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	return pdf, nil
}

func heading(pdf *fpdf.Fpdf, s string) {
	pdf.SetFont(fontFamily, "B", titleSize)
	pdf.CellFormat(0, 14, s, "", 1, "C", false, 0, "")
	pdf.Ln(lineHeight)
}

// keyEntry is the answer as printed in the key. Multiple choice answers
// carry their option letter.
func keyEntry(q *problemgen.Question) string {
	if q.Format == problemgen.FormatMultipleChoice {
		for j, c := range q.Choices {
			if c == q.Answer {
				return letter(j) + ") " + c
			}
		}
	}
	return q.Answer
}

func letter(i int) string { return string(rune('A' + i)) }
