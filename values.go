package omnifolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/omnifolio/date"
	"github.com/shopspring/decimal"
)

// Record is a loosely typed JSON object read from a file.
//
// All field accessors return a *FieldError naming the field, the file and the
// context of the record, so that every decoder reports errors the same way.
type Record struct {
	obj     map[string]any
	path    string // file the object was read from
	context string // e.g. "account config" or "transaction #2"
}

// AsRecord returns v as a Record if it is a JSON object.
func AsRecord(v any, path, context string) (Record, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Record{}, formatError(path, "%s must be an object, got %s", context, jsonType(v))
	}
	return Record{obj, path, context}, nil
}

func (r Record) fail(kind error, field string, err error) error {
	return &FieldError{Kind: kind, Path: r.path, Field: field, Context: r.context, Err: err}
}

// get returns the raw value of a field.
func (r Record) get(field string) (any, error) {
	v, err := jsonpath.Get("$."+field, r.obj)
	if err != nil {
		return nil, r.fail(ErrValidation, field, errors.New("missing property"))
	}
	return v, nil
}

// String reads a field that must be a JSON string.
func (r Record) String(field string) (string, error) {
	v, err := r.get(field)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", r.fail(ErrValidation, field, fmt.Errorf("must be of type 'string', got %s", jsonType(v)))
	}
	return s, nil
}

// Identifier reads a field that must be a non blank JSON string.
func (r Record) Identifier(field string) (string, error) {
	s, err := r.String(field)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", r.fail(ErrValidation, field, errors.New("must not be blank"))
	}
	return s, nil
}

// Decimal reads a field that must be a JSON number, or a string holding a number.
func (r Record) Decimal(field string) (decimal.Decimal, error) {
	v, err := r.get(field)
	if err != nil {
		return decimal.Zero, err
	}
	var txt string
	switch v := v.(type) {
	case json.Number:
		txt = v.String()
	case string:
		txt = strings.TrimSpace(v)
	default:
		return decimal.Zero, r.fail(ErrValidation, field, fmt.Errorf("must be of type 'number', got %s", jsonType(v)))
	}
	d, err := decimal.NewFromString(txt)
	if err != nil {
		return decimal.Zero, r.fail(ErrValidation, field, fmt.Errorf("%q is not a number", txt))
	}
	return d, nil
}

// Int reads a field that must be an integral JSON number.
func (r Record) Int(field string) (int64, error) {
	v, err := r.get(field)
	if err != nil {
		return 0, err
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, r.fail(ErrValidation, field, fmt.Errorf("must be of type 'integer', got %s", jsonType(v)))
	}
	i, err := n.Int64()
	if err != nil {
		return 0, r.fail(ErrValidation, field, fmt.Errorf("%s is not an integer", n))
	}
	return i, nil
}

// Date reads a field that must be a string holding a strict ISO-8601 date.
func (r Record) Date(field string) (date.Date, error) {
	s, err := r.String(field)
	if err != nil {
		return date.Date{}, err
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, r.fail(ErrValidation, field, err)
	}
	return d, nil
}

// Enum reads a string field and checks it against a validation rule.
func (r Record) Enum(field, rule string) (string, error) {
	s, err := r.String(field)
	if err != nil {
		return "", err
	}
	if err := check(s, rule); err != nil {
		return "", r.fail(ErrInvalidValue, field, err)
	}
	return s, nil
}
