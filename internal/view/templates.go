package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/odyssey-erp/supplierdesk/internal/document"
	"github.com/odyssey-erp/supplierdesk/web"
)

const documentPage = "reports/document_pdf.html"

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	CurrentPath string
	Data        any
}

// DocumentView feeds the shared document partial. ActionsBase is empty when the
// table is printed, and names the page route when rows get edit/delete controls.
type DocumentView struct {
	Doc         document.Document
	ActionsBase string
}

// NewEngine parses templates at build-time. Money cells are prefixed with
// currencySymbol on screen and in print alike.
func NewEngine(currencySymbol string) (*Engine, error) {
	p := printer()
	funcMap := template.FuncMap{
		"cell": func(kind document.Kind, value string) string {
			return formatCell(p, currencySymbol, kind, value)
		},
		"kindAt": func(kinds []document.Kind, i int) document.Kind {
			if i < 0 || i >= len(kinds) {
				return document.KindText
			}
			return kinds[i]
		},
		"keyAt": func(keys []string, i int) string {
			if i < 0 || i >= len(keys) {
				return ""
			}
			return keys[i]
		},
		"documentView": func(doc document.Document, actionsBase string) DocumentView {
			return DocumentView{Doc: doc, ActionsBase: actionsBase}
		},
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates,
		"templates/layouts/*.html",
		"templates/partials/*.html",
		"templates/pages/*.html",
		"templates/reports/*.html",
	)
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template with TemplateData and writes it with status.
// Nothing is written when the template fails.
func (e *Engine) Render(w http.ResponseWriter, status int, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	buf := &bytes.Buffer{}
	if err := e.templates.ExecuteTemplate(buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// DocumentHTML renders the standalone printable page used by PDF engines.
func (e *Engine) DocumentHTML(doc document.Document) (string, error) {
	if e == nil {
		return "", fmt.Errorf("template engine not initialised")
	}
	buf := &bytes.Buffer{}
	if err := e.templates.ExecuteTemplate(buf, documentPage, DocumentView{Doc: doc}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// formatCell groups the integer digits of number and money cells and keeps the
// stored fraction digits as they are. Money shows at least two fraction digits.
func formatCell(p *message.Printer, symbol string, kind document.Kind, value string) string {
	switch kind {
	case document.KindNumber, document.KindMoney:
	default:
		return value
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}
	text := d.String()
	if kind == document.KindMoney && d.Exponent() >= -2 {
		text = d.StringFixed(2)
	}
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}
	whole, fraction, hasFraction := strings.Cut(text, ".")
	formatted := sign + groupDigits(p, whole)
	if hasFraction {
		formatted += "." + fraction
	}
	if kind == document.KindNumber || symbol == "" {
		return formatted
	}
	return symbol + " " + formatted
}

func groupDigits(p *message.Printer, digits string) string {
	if n, err := strconv.ParseUint(digits, 10, 64); err == nil {
		return p.Sprint(number.Decimal(n))
	}
	// Past uint64 the printer has no exact conversion.
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
