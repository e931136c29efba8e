// Package service implements the sales aggregation business logic.
package service

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/mreyes/salesreport/internal/catalogue"
	"github.com/mreyes/salesreport/internal/sales"
)

// Service joins sale records against the price catalogue.
type Service struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewService creates a new aggregation service.
func NewService(logger *slog.Logger) *Service {
	return &Service{
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Result holds the outcome of one aggregation run.
type Result struct {
	// TotalCost is accumulated as a floating-point sum; rounding is left to
	// the presentation layer.
	TotalCost float64
	// Errors lists row-level problems in encounter order.
	Errors []string
}

// ComputeTotal sums price * quantity over every sale record that matches the
// catalogue. Malformed rows are reported in Result.Errors and skipped; every
// record is evaluated regardless of prior errors.
func (s *Service) ComputeTotal(entries []catalogue.Entry, records []sales.RawRecord) Result {
	prices := catalogue.PriceIndex(entries)

	var res Result
	rowError := func(msg string) {
		s.logger.Debug("sales row skipped", slog.String("reason", msg))
		res.Errors = append(res.Errors, msg)
	}

	for _, rec := range records {
		if rec.Product == nil || rec.Quantity == nil {
			rowError(fmt.Sprintf("invalid sales record: %s", rec))
			continue
		}
		product, ok := rec.Product.(string)
		if !ok {
			rowError(fmt.Sprintf("invalid sales record: %s", rec))
			continue
		}
		price, ok := prices[product]
		if !ok {
			rowError(fmt.Sprintf("%s not found in catalogue", product))
			continue
		}
		// JSON numbers decode as float64; anything else is not a quantity.
		quantity, ok := rec.Quantity.(float64)
		if !ok {
			rowError(fmt.Sprintf("invalid quantity %v for %s", rec.Quantity, product))
			continue
		}
		record := sales.Record{Product: product, Quantity: quantity}
		if err := s.validate.Struct(record); err != nil {
			rowError(fmt.Sprintf("invalid quantity %v for %s", quantity, product))
			continue
		}
		res.TotalCost += price * quantity
	}

	return res
}
