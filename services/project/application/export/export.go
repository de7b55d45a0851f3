// Package export renders priced quotes for people: a plain-text summary for
// chat and e-mail, and an XLSX workbook. Renderers only format the values
// already present in a services.Quote.
package export

import (
	"fmt"
	"strings"

	"github.com/ghuser/deloculator/services/project/domain"
	"github.com/ghuser/deloculator/services/project/domain/services"
)

// Format names an export rendering.
type Format string

const (
	FormatText Format = "text"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps a query value to a Format. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, s)
	}
}

// Document is a rendered export ready to be served as an attachment.
type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

// Render produces q in the requested format.
func Render(q services.Quote, f Format) (*Document, error) {
	switch f {
	case FormatText:
		return &Document{
			ContentType: "text/plain; charset=utf-8",
			Filename:    filename(q, "txt"),
			Body:        []byte(Text(q)),
		}, nil
	case FormatXLSX:
		body, err := XLSX(q)
		if err != nil {
			return nil, err
		}
		return &Document{
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    filename(q, "xlsx"),
			Body:        body,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedExportFormat, f)
	}
}

func filename(q services.Quote, ext string) string {
	return fmt.Sprintf("project_%s.%s", q.Project.ID, ext)
}
