// Package statusimport applies carrier status updates from a CSV export.
package statusimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/domain"
)

// StatusWriter updates the fulfilment status of a stored order.
type StatusWriter interface {
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}

// Result summarizes an import run.
type Result struct {
	Updated int
	// Skipped counts rows naming orders that do not exist.
	Skipped int
}

// CSVImporter reads rows of orderId,status and updates matching orders.
type CSVImporter struct {
	reader *csv.Reader
	orders StatusWriter
	logger *zap.Logger
}

func NewCSVImporter(r io.Reader, orders StatusWriter, logger *zap.Logger) *CSVImporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.TrimLeadingSpace = true
	return &CSVImporter{reader: csvr, orders: orders, logger: logger}
}

// Run validates every status before writing it. An unknown status aborts
// the run; rows for unknown orders are skipped and counted.
func (i *CSVImporter) Run(ctx context.Context) (Result, error) {
	var res Result

	headers, err := i.reader.Read()
	if err != nil {
		return res, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["orderid"]; !ok {
		return res, errors.New("missing orderId column")
	}
	if _, ok := index["status"]; !ok {
		return res, errors.New("missing status column")
	}

	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return res, fmt.Errorf("read row %d: %w", line, err)
		}

		orderID := pick(record, index, "orderid")
		rawStatus := pick(record, index, "status")
		if orderID == "" && rawStatus == "" {
			continue
		}
		if orderID == "" {
			return res, fmt.Errorf("row %d: orderId is required", line)
		}
		status, err := domain.ParseOrderStatus(rawStatus)
		if err != nil {
			return res, fmt.Errorf("row %d: %w", line, err)
		}

		if err := i.orders.UpdateStatus(ctx, orderID, status); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				i.logger.Warn("status import: unknown order", zap.String("order_id", orderID), zap.Int("row", line))
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("row %d: update %s: %w", line, orderID, err)
		}
		res.Updated++
	}
	return res, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	i, ok := index[key]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
