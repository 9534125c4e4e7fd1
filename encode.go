package rebalance

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/PaesslerAG/jsonpath"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// csvAmount is a lenient number: a currency symbol and thousands separators are ignored.
type csvAmount struct {
	Fraction
}

func (a *csvAmount) UnmarshalCSV(s string) (err error) {
	a.Fraction, err = ParseAmount(s)
	return err
}

// ParseAmount parses a lenient amount: "6500", " $6,500.00", "-$12.5" or "$-12.5".
// A leading currency symbol or code and thousands separators are ignored.
func ParseAmount(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.' && r != '-' && r != '+'
	})
	s = strings.ReplaceAll(s, ",", "")
	f, err := ParseFraction(s)
	if err != nil {
		return Fraction{}, err
	}
	if neg {
		f = f.Neg()
	}
	return f, nil
}

type targetRow struct {
	Name    string    `csv:"name"`
	Percent csvAmount `csv:"percent"`
}

type holdingRow struct {
	Name  string    `csv:"name"`
	Value csvAmount `csv:"value"`
}

// newCSVReader returns the reader for two-column, headerless files with '#' comments.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 2
	return cr
}

// DecodeTargets reads "name,percent" lines, percent being out of 100.
func DecodeTargets(r io.Reader) ([]Target, error) {
	var rows []targetRow
	if err := gocsv.UnmarshalCSVWithoutHeaders(newCSVReader(r), &rows); err != nil {
		return nil, fmt.Errorf("%w: targets: %v", ErrInvalidInput, err)
	}

	targets := make([]Target, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: target with an empty name", ErrInvalidInput)
		}
		if row.Percent.GreaterThan(F(100)) {
			return nil, fmt.Errorf("%w: target %q is %s%%, more than 100%%", ErrInvalidInput, name, row.Percent.StringFixed(3))
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: target %q", ErrDuplicateAsset, name)
		}
		seen[name] = true
		targets = append(targets, Target{Name: name, Percent: row.Percent.Fraction})
	}
	return targets, nil
}

// DecodeHoldings reads "name,value" lines. An empty file is an empty portfolio.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	var rows []holdingRow
	if err := gocsv.UnmarshalCSVWithoutHeaders(newCSVReader(r), &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: holdings: %v", ErrInvalidInput, err)
	}

	holdings := make([]Holding, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: holding with an empty name", ErrInvalidInput)
		}
		holdings = append(holdings, Holding{Name: name, Value: row.Value.Fraction})
	}
	return holdings, nil
}

// HoldingsQuery locates the positions in a JSON document, like a broker export.
type HoldingsQuery struct {
	Path     string // JSONPath to an array of objects, or to an object of name: value. Default "$".
	NameKey  string // Default "name".
	ValueKey string // Default "value".
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// DecodeHoldingsJSON reads holdings from a JSON document.
func DecodeHoldingsJSON(r io.Reader, q HoldingsQuery) ([]Holding, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: holdings: %v", ErrInvalidInput, err)
	}

	path := orDefault(q.Path, "$")
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: holdings path %q: %v", ErrInvalidInput, path, err)
	}

	var holdings []Holding
	switch v := selected.(type) {
	case map[string]any:
		for _, name := range slices.Sorted(maps.Keys(v)) {
			value, err := jsonAmount(v[name])
			if err != nil {
				return nil, fmt.Errorf("%w: holding %q: %v", ErrInvalidInput, name, err)
			}
			holdings = append(holdings, Holding{Name: name, Value: value})
		}
	case []any:
		nameKey, valueKey := orDefault(q.NameKey, "name"), orDefault(q.ValueKey, "value")
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: holding #%d is not an object", ErrInvalidInput, i)
			}
			name, _ := obj[nameKey].(string)
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, fmt.Errorf("%w: holding #%d has no %q", ErrInvalidInput, i, nameKey)
			}
			value, err := jsonAmount(obj[valueKey])
			if err != nil {
				return nil, fmt.Errorf("%w: holding %q: %v", ErrInvalidInput, name, err)
			}
			holdings = append(holdings, Holding{Name: name, Value: value})
		}
	default:
		return nil, fmt.Errorf("%w: holdings path %q selects %T, want an array or an object", ErrInvalidInput, path, selected)
	}
	return holdings, nil
}

func jsonAmount(v any) (Fraction, error) {
	switch v := v.(type) {
	case json.Number:
		return ParseFraction(v.String())
	case string:
		return ParseAmount(v)
	case float64:
		return F(v), nil
	case nil:
		return Fraction{}, errors.New("missing value")
	default:
		return Fraction{}, fmt.Errorf("unsupported value %v", v)
	}
}
