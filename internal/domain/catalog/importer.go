package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// ImportResult counts rows read from the file, rows written and rows
// rejected as malformed. Rows already in the catalog are neither written
// nor rejected.
type ImportResult struct {
	Read     int
	Inserted int64
	Skipped  int
}

// ImportIngredients loads "name,measurement_unit" rows. It can be rerun on
// the same file without creating duplicates.
func (s *service) ImportIngredients(ctx context.Context, r io.Reader) (ImportResult, error) {
	var result ImportResult
	var batch []*models.Ingredient

	err := readRows(r, "name", func(line int, fields []string) {
		result.Read++
		name, unit := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
		if name == "" || unit == "" ||
			utf8.RuneCountInString(name) > config.MaxIngredientNameLength ||
			utf8.RuneCountInString(unit) > config.MaxUnitLength {
			result.Skipped++
			slog.Warn("Skipping ingredient row", slog.Int("line", line), slog.String("name", name))
			return
		}
		batch = append(batch, &models.Ingredient{Name: name, MeasurementUnit: unit})
	})
	if err != nil {
		return result, err
	}

	result.Inserted, err = s.repository.InsertIngredients(ctx, batch)
	if err != nil {
		return result, fmt.Errorf("failed to insert ingredients: %w", err)
	}
	return result, nil
}

// ImportTags loads "name,slug" rows.
func (s *service) ImportTags(ctx context.Context, r io.Reader) (ImportResult, error) {
	var result ImportResult
	var batch []*models.Tag

	err := readRows(r, "name", func(line int, fields []string) {
		result.Read++
		name, slug := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
		if name == "" || utf8.RuneCountInString(name) > config.MaxTagNameLength ||
			len(slug) > config.MaxTagSlugLength || !slugPattern.MatchString(slug) {
			result.Skipped++
			slog.Warn("Skipping tag row", slog.Int("line", line), slog.String("slug", slug))
			return
		}
		batch = append(batch, &models.Tag{Name: name, Slug: slug})
	})
	if err != nil {
		return result, err
	}

	result.Inserted, err = s.repository.InsertTags(ctx, batch)
	if err != nil {
		return result, fmt.Errorf("failed to insert tags: %w", err)
	}
	return result, nil
}

// readRows calls fn for every two-column record. A first row whose first
// column equals header is treated as a header and skipped.
func readRows(r io.Reader, header string, fn func(line int, fields []string)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read csv: %w", err)
		}
		line++
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), header) {
			continue
		}
		if len(record) < 2 {
			record = append(record, "")
		}
		fn(line, record[:2])
	}
}
