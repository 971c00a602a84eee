// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/apex/log"
)

// filterRegex is the pattern used to parse filter expressions into key, operator, and target components.
// It matches: key + operator + target, where operator can be negated with !
var filterRegex = regexp.MustCompile(`^(.*?)(!?[=^~><@/])(.*)$`)

// Filter represents a single parsed --filter expression including the key,
// operand, optional negation and target value.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// Filterable keys.
const (
	KeySlug  = "slug"
	KeyValue = "value"
)

// BuildFilters parses a filter specification string into a slice of Filter.
// Invalid specs (unsupported key or malformed expression) are skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override.
	delim := ","
	if d, ok := os.LookupEnv("SLUGGER_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		if parts[1] != KeySlug && parts[1] != KeyValue {
			msg := fmt.Sprintf("filter key not found: %s", parts[1])
			log.Error(msg)
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
			continue
		}

		// parts[2] is the operand. It may have a leading negation.
		negate := strings.HasPrefix(parts[2], "!")
		if negate {
			parts[2] = strings.TrimPrefix(parts[2], "!")
		}

		filters = append(filters, Filter{
			Key:     parts[1],
			Negate:  negate,
			Operand: parts[2],
			Target:  parts[3],
		})
	}

	return filters
}

// FilterRows returns the rows matching every filter in spec.
func FilterRows(rows []Row, spec string) []Row {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return rows
	}

	//nolint:prealloc
	var out []Row
	for _, r := range rows {
		if applyFilters(r, filters) {
			out = append(out, r)
		}
	}
	return out
}

// applyFilters returns true if the row matches all of the provided filters.
func applyFilters(r Row, filters []Filter) bool {
	for _, filter := range filters {
		value := r.Slug
		if filter.Key == KeyValue {
			value = InterfaceToString(r.Value)
		}
		if !checkStringOperand(value, filter) {
			return false
		}
	}
	return true
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Target == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Target) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Target) == !filter.Negate
	case ">":
		return value > filter.Target == !filter.Negate
	case "<":
		return value < filter.Target == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Target) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Target, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Target)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}
