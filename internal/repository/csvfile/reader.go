package csvfile

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alexanderquispe/pothole-dashboard/internal/pkg/errors"
)

const utf8BOM = "\uFEFF"

// missingValues - значения, которые считаются отсутствующими (как NA в pandas)
var missingValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsMissing - пустое или NA-значение ячейки
func IsMissing(value string) bool {
	_, ok := missingValues[strings.TrimSpace(value)]
	return ok
}

// table - прочитанный CSV файл: заголовок и строки данных
type table struct {
	path   string
	header []string
	index  map[string]int
	rows   [][]string
}

func (t *table) has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// get возвращает значение колонки; отсутствующая колонка или ячейка дают ""
func (t *table) get(row []string, column string) string {
	i, ok := t.index[column]
	if !ok || i >= len(row) {
		return ""
	}
	value := strings.TrimSpace(row[i])
	if IsMissing(value) {
		return ""
	}
	return value
}

// record - все поля строки в виде map, отсутствующие значения опускаются
func (t *table) record(row []string) map[string]string {
	fields := make(map[string]string, len(t.header))
	for _, column := range t.header {
		if value := t.get(row, column); value != "" {
			fields[column] = value
		}
	}
	return fields
}

func readTable(ctx context.Context, path string) (*table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errors.ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return parseTable(path, f)
}

func parseTable(path string, src io.Reader) (*table, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s: empty file", errors.ErrDatasetParse, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: header: %v", errors.ErrDatasetParse, path, err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	t := &table{
		path:   path,
		header: make([]string, len(header)),
		index:  make(map[string]int, len(header)),
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		t.header[i] = name
		t.index[name] = i
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errors.ErrDatasetParse, path, err)
		}
		if len(row) > len(header) {
			return nil, fmt.Errorf("%w: %s: row %d: expected %d fields, saw %d",
				errors.ErrDatasetParse, path, len(t.rows)+1, len(header), len(row))
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}
