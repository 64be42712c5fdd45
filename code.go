package dtcref

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Severity is the criticality of a diagnostic code. Severities are
// totally ordered from SeverityLow to SeverityCritical so records can
// be filtered and sorted by criticality.
type Severity int

// Severity levels in ascending order.
const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// severityNames maps severities to their canonical corpus spelling.
var severityNames = map[Severity]string{
	SeverityLow:      "Low",
	SeverityMedium:   "Medium",
	SeverityHigh:     "High",
	SeverityCritical: "Critical",
}

// String returns the canonical name of the severity.
func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether s is one of the defined severity levels.
func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

// MarshalJSON encodes the severity as its canonical name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its canonical name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity parses a severity name case-insensitively.
// Returns EINVALID for names outside the closed enumeration.
func ParseSeverity(name string) (Severity, error) {
	for s, n := range severityNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, Errorf(EINVALID, "unrecognized severity %q", name)
}

// Category is the vehicle domain a code belongs to, derived from the
// first letter of the code.
type Category string

// Categories defined by the diagnostic code standard.
const (
	CategoryPowertrain Category = "Powertrain"
	CategoryChassis    Category = "Chassis"
	CategoryBody       Category = "Body"
	CategoryNetwork    Category = "Network"
	CategoryUnknown    Category = "Unknown"
)

// codePattern matches a well-formed diagnostic code: a category letter
// followed by four hex digits, e.g. P0300.
var codePattern = regexp.MustCompile(`^[PCBU][0-9A-Fa-f]{4}$`)

// NormalizeCode uppercases and trims a code for case-insensitive lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCode reports whether code matches the diagnostic code pattern
// after normalization.
func ValidCode(code string) bool {
	return codePattern.MatchString(NormalizeCode(code))
}

// CodeRecord is one entry in the diagnostic code reference corpus.
// Records are immutable once loaded; Code is unique within a corpus
// and stored uppercase.
type CodeRecord struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	System      string   `json:"system"`
	Causes      []string `json:"possibleCauses"`
	Actions     []string `json:"recommendedActions"`
}

// Validate returns an error if the record contains invalid fields.
func (r *CodeRecord) Validate() error {
	if !ValidCode(r.Code) {
		return Errorf(EINVALID, "malformed code %q", r.Code)
	}
	if strings.TrimSpace(r.Description) == "" {
		return Errorf(EINVALID, "record %s: description required", NormalizeCode(r.Code))
	}
	if !r.Severity.Valid() {
		return Errorf(EINVALID, "record %s: severity required", NormalizeCode(r.Code))
	}
	if strings.TrimSpace(r.System) == "" {
		return Errorf(EINVALID, "record %s: system required", NormalizeCode(r.Code))
	}
	return nil
}

// Category returns the vehicle domain derived from the code's first
// letter.
func (r *CodeRecord) Category() Category {
	code := NormalizeCode(r.Code)
	if code == "" {
		return CategoryUnknown
	}
	switch code[0] {
	case 'P':
		return CategoryPowertrain
	case 'C':
		return CategoryChassis
	case 'B':
		return CategoryBody
	case 'U':
		return CategoryNetwork
	}
	return CategoryUnknown
}
