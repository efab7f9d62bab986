package notify

import (
	"bytes"
	"errors"
	"text/template"
)

const DefaultTemplate = `[Payment {{.StatusLabel}}]
Client: {{.ClientID}}
Contract: {{.ContractID}}
Due Date: {{.DueDate}}
{{ if .DaysLate }}Days Late: {{.DaysLate}}
{{ end }}Amount Due: {{.Amount}}
{{ if .PeriodPaid }}Note: an approved payment already covers the current period.
{{ end }}`

// TemplateData provides fields for rendering reminder content.
type TemplateData struct {
	ClientID    string
	ContractID  string
	Status      string
	StatusLabel string
	DueDate     string
	DaysLate    int
	Amount      string
	PeriodPaid  bool
}

// Template renders reminder content.
type Template struct {
	tpl *template.Template
}

// NewTemplate parses a reminder template, falling back to DefaultTemplate.
func NewTemplate(tpl string) (*Template, error) {
	if tpl == "" {
		tpl = DefaultTemplate
	}
	parsed, err := template.New("payment-reminder").Parse(tpl)
	if err != nil {
		return nil, err
	}
	return &Template{tpl: parsed}, nil
}

// Render applies the template to data.
func (t *Template) Render(data TemplateData) (string, error) {
	if t == nil || t.tpl == nil {
		return "", errors.New("reminder template: nil")
	}
	var buf bytes.Buffer
	if err := t.tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
