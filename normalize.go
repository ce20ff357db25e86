package etherscan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/neoctobers/etherscan-go/internal/bigutil"
)

// Record is a vendor record with canonical lower-snake-case field
// names and coerced values: bool for flag fields, int64 (or *big.Int
// when the value exceeds int64) for digit strings, nil for empty
// strings, and the original string otherwise.
type Record map[string]any

var (
	camelBoundary    = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	doubleUnderscore = regexp.MustCompile(`__([A-Z])`)
	lowerThenUpper   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// NormalizeName converts a vendor field name to lower snake case. Two
// vendor irregulars are mapped explicitly; everything else goes
// through the camel-case boundary rules. The conversion is idempotent.
func NormalizeName(name string) string {
	switch name {
	case "timeStamp":
		return "timestamp"
	case "txreceipt_status":
		return "tx_receipt_status"
	}

	name = camelBoundary.ReplaceAllString(name, "${1}_${2}")
	name = doubleUnderscore.ReplaceAllString(name, "_${1}")
	name = lowerThenUpper.ReplaceAllString(name, "${1}_${2}")

	return strings.ToLower(name)
}

// NormalizeRecord converts a raw vendor record of string values into a
// Record. The conversion is total: unrecognized values pass through as
// strings.
func NormalizeRecord(raw map[string]string) Record {
	record := make(Record, len(raw))
	for name, value := range raw {
		name = NormalizeName(name)
		switch {
		case strings.HasPrefix(name, "is_") || strings.HasSuffix(name, "_status"):
			record[name] = parseVendorBool(value)
		case value == "":
			record[name] = nil
		case isDigits(value):
			record[name] = parseVendorInt(value)
		default:
			record[name] = value
		}
	}

	return record
}

// parseVendorBool applies the vendor's flag convention: anything that
// is not an explicit negative reads as true.
func parseVendorBool(value string) bool {
	switch strings.ToLower(value) {
	case "0", "false", "none", "null", "n/a", "":
		return false
	}

	return true
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return len(value) > 0
}

func parseVendorInt(value string) any {
	if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
		return parsed
	}

	parsed, err := bigutil.FromString(value)
	if err != nil {
		return value
	}

	return parsed
}

// NormalizeLooseRecord normalizes a record whose values are not all
// strings (some vendor payloads nest arrays, such as log topics).
// String values are coerced like NormalizeRecord; anything else keeps
// its decoded value under the normalized name.
func NormalizeLooseRecord(raw map[string]any) Record {
	record := make(Record, len(raw))
	stringFields := make(map[string]string, len(raw))
	for name, value := range raw {
		if text, ok := value.(string); ok {
			stringFields[name] = text

			continue
		}
		record[NormalizeName(name)] = value
	}
	for name, value := range NormalizeRecord(stringFields) {
		record[name] = value
	}

	return record
}

func normalizeRecords(raw []map[string]string) []Record {
	records := make([]Record, 0, len(raw))
	for _, entry := range raw {
		records = append(records, NormalizeRecord(entry))
	}

	return records
}
