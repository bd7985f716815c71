package service

import "errors"

var (
	ErrUnsupportedReportType = errors.New("unsupported report type")
	ErrInvalidInput          = errors.New("invalid input")
)
