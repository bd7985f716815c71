package export

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/greenloop/reports-service/internal/model"
	"github.com/greenloop/reports-service/internal/share"
)

// ErrExportFailed surfaces when an export cannot be delivered even through
// the text fallback. Anything recovered by the fallback is not an error.
var ErrExportFailed = errors.New("export failed")

// Delivery describes what was handed to the share facility.
type Delivery struct {
	FileName     string
	ContentType  string
	Content      []byte
	UsedFallback bool
}

// Orchestrator picks a formatter for the requested format and drives the
// hand-off. Binary formats (pdf, xlsx) go render → print to file → share
// file; if the share facility is unavailable or any step fails, the chain
// falls back once to the plain-text formatter and a generic text share.
// Text formats go straight to the generic share call.
type Orchestrator struct {
	formatters map[model.ExportFormat]Formatter
	fallback   Formatter
	printer    share.Printer
	sharer     share.Sharer
	log        zerolog.Logger
}

func NewOrchestrator(printer share.Printer, sharer share.Sharer, log zerolog.Logger) *Orchestrator {
	text := NewTextFormatter()
	return &Orchestrator{
		formatters: map[model.ExportFormat]Formatter{
			model.FormatCSV:  NewCSVFormatter(),
			model.FormatPDF:  NewPDFFormatter(),
			model.FormatXLSX: NewXLSXFormatter(),
			model.FormatText: text,
		},
		fallback: text,
		printer:  printer,
		sharer:   sharer,
		log:      log,
	}
}

func (o *Orchestrator) Export(ctx context.Context, format model.ExportFormat, r *model.Report, filter model.Filter, title string) (*Delivery, error) {
	formatter, ok := o.formatters[format]
	if !ok {
		return nil, fmt.Errorf("%w: unknown format %q", ErrExportFailed, string(format))
	}

	switch format {
	case model.FormatPDF, model.FormatXLSX:
		return o.exportDocument(r, filter, title, formatter)
	default:
		return o.exportText(r, filter, title, formatter)
	}
}

func (o *Orchestrator) exportDocument(r *model.Report, filter model.Filter, title string, formatter Formatter) (*Delivery, error) {
	content, err := formatter.Render(r, filter, title)
	if err != nil {
		return o.shareFallback(r, filter, title, err)
	}

	if !o.sharer.Available() {
		return o.shareFallback(r, filter, title, errors.New("share facility unavailable"))
	}

	name := buildFileName(r, filter, formatter.FileExt())
	handle, err := o.printer.PrintToFile(name, content)
	if err != nil {
		return o.shareFallback(r, filter, title, err)
	}

	if err := o.sharer.ShareFile(handle, formatter.ContentType(), reportTitle(r, title)); err != nil {
		return o.shareFallback(r, filter, title, err)
	}

	return &Delivery{FileName: name, ContentType: formatter.ContentType(), Content: content}, nil
}

func (o *Orchestrator) exportText(r *model.Report, filter model.Filter, title string, formatter Formatter) (*Delivery, error) {
	content, err := formatter.Render(r, filter, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExportFailed, err)
	}
	if err := o.sharer.ShareText(string(content), reportTitle(r, title)); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExportFailed, err)
	}
	return &Delivery{
		FileName:    buildFileName(r, filter, formatter.FileExt()),
		ContentType: formatter.ContentType(),
		Content:     content,
	}, nil
}

// shareFallback runs the single retry of the fallback chain. It either
// delivers the plain-text rendition or fails the whole export; both outcomes
// produce exactly one notification upstream.
func (o *Orchestrator) shareFallback(r *model.Report, filter model.Filter, title string, cause error) (*Delivery, error) {
	o.log.Warn().Err(cause).Str("report_type", string(r.Type)).Msg("document export failed, trying text fallback")

	content, err := o.fallback.Render(r, filter, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (fallback: %s)", ErrExportFailed, cause, err)
	}
	if err := o.sharer.ShareText(string(content), reportTitle(r, title)); err != nil {
		return nil, fmt.Errorf("%w: %s (fallback: %s)", ErrExportFailed, cause, err)
	}

	return &Delivery{
		FileName:     buildFileName(r, filter, o.fallback.FileExt()),
		ContentType:  o.fallback.ContentType(),
		Content:      content,
		UsedFallback: true,
	}, nil
}

func buildFileName(r *model.Report, filter model.Filter, ext string) string {
	period := "all-time"
	if filter.DateRange != nil {
		period = fmt.Sprintf("%s-%s",
			filter.DateRange.Start.Format("20060102"),
			filter.DateRange.End.Format("20060102"))
	}
	return fmt.Sprintf("report-%s-%s.%s", sanitizeFileName(string(r.Type)), period, ext)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, c := range input {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			result = append(result, c)
		case c == '-', c == '_':
			result = append(result, c)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
