package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

const (
	colAsset  = "asset"
	colWeight = "weight_bps"
)

var errNoAllocationRows = errors.New("CSV has no allocation rows")

// ParseAllocationCSV reads `asset,weight_bps` rows in file order. Header names
// are matched case-insensitively and extra columns are ignored. Weight bounds
// are left to the factory.
func ParseAllocationCSV(r io.Reader) ([]models.Allocation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols, err := locateColumns(header, colAsset, colWeight)
	if err != nil {
		return nil, err
	}

	var out []models.Allocation
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", line, err)
		}
		alloc, err := allocationFromRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		out = append(out, alloc)
	}

	if len(out) == 0 {
		return nil, errNoAllocationRows
	}
	return out, nil
}

func locateColumns(header []string, required ...string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column: %s", name)
		}
	}
	return cols, nil
}

func allocationFromRecord(record []string, cols map[string]int) (models.Allocation, error) {
	field := func(name string) string {
		if i := cols[name]; i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	raw := field(colAsset)
	if raw == "" {
		return models.Allocation{}, errors.New("asset is empty")
	}
	asset, err := models.ParseAddress(raw)
	if err != nil {
		return models.Allocation{}, err
	}

	rawWeight := field(colWeight)
	weight, err := strconv.ParseUint(rawWeight, 10, 32)
	if err != nil {
		return models.Allocation{}, fmt.Errorf("invalid weight_bps %q", rawWeight)
	}
	return models.Allocation{Asset: asset, WeightBps: models.BasisPoints(weight)}, nil
}
