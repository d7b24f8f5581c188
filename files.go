package omnifolio

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ReadText reads the whole file as UTF-8 text.
func ReadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", ioError(path, err)
	}
	if !utf8.Valid(content) {
		return "", formatError(path, "not a valid UTF-8 text")
	}
	return string(content), nil
}

// readJSON parses the file as a single JSON value.
// Numbers are kept as json.Number so that decimals are exact.
func readJSON(path string) (any, error) {
	txt, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(strings.NewReader(txt))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, formatError(path, "not a correct json: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, formatError(path, "unexpected data after the top level json value")
	}
	return v, nil
}

// ReadJSONObject reads a file whose top level value must be a JSON object.
func ReadJSONObject(path string) (map[string]any, error) {
	v, err := readJSON(path)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, formatError(path, "top level value must be an object, got %s", jsonType(v))
	}
	return obj, nil
}

// ReadJSONArray reads a file whose top level value must be a JSON array.
func ReadJSONArray(path string) ([]any, error) {
	v, err := readJSON(path)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, formatError(path, "top level value must be an array, got %s", jsonType(v))
	}
	return list, nil
}

// CSVRow is a record of a CSV file with its position in the file.
type CSVRow struct {
	Line   int // 1-based
	Fields []string
}

// ReadCSV reads a CSV file with no header.
//
// Fields are trimmed from surrounding whitespace, and blank lines are skipped.
// Quoted fields follow RFC 4180, and rows may have any number of fields.
func ReadCSV(path string) ([]CSVRow, error) {
	txt, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(strings.NewReader(txt))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows []CSVRow
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, formatError(path, "not a correct csv: %w", err)
		}
		line, _ := r.FieldPos(0)
		blank := true
		for i, field := range record {
			record[i] = strings.TrimSpace(field)
			blank = blank && record[i] == ""
		}
		if blank {
			continue
		}
		rows = append(rows, CSVRow{Line: line, Fields: record})
	}
	return rows, nil
}

// jsonType names the type of a value decoded from json for error messages.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case json.Number:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return "an unknown type"
	}
}

// isDir tells if the entry e of dir is a directory, following symbolic links.
func isDir(dir string, e fs.DirEntry) (bool, error) {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir(), nil
	}
	path := filepath.Join(dir, e.Name())
	info, err := os.Stat(path)
	if err != nil {
		return false, ioError(path, err)
	}
	return info.IsDir(), nil
}
