// Package corpus parses diagnostic code corpora. Two input formats are
// supported: the key-value block text format and the legacy CSV layout.
// Parsing fails the whole load on the first invalid record; a corpus
// that does not parse cleanly yields no records at all, so a partially
// loaded reference database can never mislead a caller.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/awahed/dtcref"
)

// Keys recognized in the block format.
const (
	keyCode        = "Error Code"
	keyDescription = "Description"
	keySeverity    = "Severity"
	keySystem      = "System"
	keyCauses      = "Possible Causes"
	keyActions     = "Recommended Actions"
)

// block collects one record under construction together with the line
// numbers needed for error reporting.
type block struct {
	record   dtcref.CodeRecord
	codeLine int
	list     *[]string
}

// Parse reads a corpus in the block key-value format: blank-line
// separated blocks of "Key: value" lines, with bulleted sub-lists under
// "Possible Causes:" and "Recommended Actions:". The returned error is
// a *dtcref.LoadError describing the first offending line.
func Parse(r io.Reader) ([]*dtcref.CodeRecord, error) {
	scanner := bufio.NewScanner(r)

	var (
		records []*dtcref.CodeRecord
		seen    = make(map[string]int)
		cur     *block
		line    int
	)

	flush := func() error {
		if cur == nil {
			return nil
		}
		record, err := finishBlock(cur, seen)
		if err != nil {
			return err
		}
		records = append(records, record)
		cur = nil
		return nil
	}

	for scanner.Scan() {
		line++
		trimmed := strings.TrimSpace(scanner.Text())

		switch {
		case trimmed == "":
			if err := flush(); err != nil {
				return nil, err
			}

		case strings.HasPrefix(trimmed, "- "):
			if cur == nil || cur.list == nil {
				return nil, loadErrorf(line, "bullet outside a list section")
			}
			*cur.list = append(*cur.list, strings.TrimSpace(strings.TrimPrefix(trimmed, "- ")))

		default:
			key, value, ok := strings.Cut(trimmed, ":")
			if !ok {
				return nil, loadErrorf(line, "unrecognized line %q", trimmed)
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)

			if key == keyCode {
				if cur != nil {
					return nil, loadErrorf(line, "Error Code before end of previous block")
				}
				cur = &block{codeLine: line}
				cur.record.Code = value
				continue
			}

			if cur == nil {
				return nil, loadErrorf(line, "%s before Error Code", key)
			}

			switch key {
			case keyDescription:
				cur.record.Description = value
				cur.list = nil
			case keySeverity:
				severity, err := dtcref.ParseSeverity(value)
				if err != nil {
					return nil, loadErrorf(line, "unrecognized severity %q", value)
				}
				cur.record.Severity = severity
				cur.list = nil
			case keySystem:
				cur.record.System = value
				cur.list = nil
			case keyCauses:
				cur.list = &cur.record.Causes
			case keyActions:
				cur.list = &cur.record.Actions
			default:
				return nil, loadErrorf(line, "unrecognized key %q", key)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return records, nil
}

// finishBlock validates a completed block and registers its code.
func finishBlock(cur *block, seen map[string]int) (*dtcref.CodeRecord, error) {
	record := cur.record
	record.Code = dtcref.NormalizeCode(record.Code)

	if !dtcref.ValidCode(record.Code) {
		return nil, loadErrorf(cur.codeLine, "malformed code %q", cur.record.Code)
	}
	if first, dup := seen[record.Code]; dup {
		return nil, loadErrorf(cur.codeLine, "duplicate code %s (first defined at line %d)", record.Code, first)
	}
	if record.Description == "" {
		return nil, loadErrorf(cur.codeLine, "record %s: description required", record.Code)
	}
	if !record.Severity.Valid() {
		return nil, loadErrorf(cur.codeLine, "record %s: severity required", record.Code)
	}
	if record.System == "" {
		return nil, loadErrorf(cur.codeLine, "record %s: system required", record.Code)
	}

	seen[record.Code] = cur.codeLine
	return &record, nil
}

// loadErrorf constructs a *dtcref.LoadError for the given input line.
func loadErrorf(line int, format string, args ...any) error {
	return &dtcref.LoadError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
