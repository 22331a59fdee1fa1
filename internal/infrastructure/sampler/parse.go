package sampler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doeshing/vmhealth/internal/domain"
)

// ParseTopCPU returns 100 minus the idle percentage of the last Cpu(s) row
// in batch-mode top output. With two iterations the last row covers the
// sampling interval instead of the time since boot.
//
// Both "94.0 id" (procps-ng) and "94.0%id" (older procps) are accepted.
func ParseTopCPU(out string) (float64, error) {
	row := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Cpu(s)") {
			row = line
		}
	}
	if row == "" {
		return 0, fmt.Errorf("%w: no Cpu(s) row in top output", domain.ErrMalformedOutput)
	}

	if i := strings.Index(row, ":"); i >= 0 {
		row = row[i+1:]
	}
	for _, part := range strings.Split(row, ",") {
		field := strings.TrimSpace(part)
		if !strings.HasSuffix(field, "id") {
			continue
		}
		raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSuffix(field, "id"), "%"))
		idle, err := parsePercent(raw)
		if err != nil {
			return 0, fmt.Errorf("%w: idle field %q is not a number", domain.ErrMalformedOutput, field)
		}
		return 100.0 - idle, nil
	}
	return 0, fmt.Errorf("%w: no idle field in %q", domain.ErrMalformedOutput, strings.TrimSpace(row))
}

// ParseFreeMemory returns used/total*100 from the "Mem:" row of free output.
// A missing row or a zero total yields 0.
func ParseFreeMemory(out string) (float64, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "Mem:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, fmt.Errorf("%w: Mem row has %d fields", domain.ErrMalformedOutput, len(fields))
		}
		total, err := parsePercent(fields[1])
		if err != nil {
			return 0, fmt.Errorf("%w: total %q is not a number", domain.ErrMalformedOutput, fields[1])
		}
		used, err := parsePercent(fields[2])
		if err != nil {
			return 0, fmt.Errorf("%w: used %q is not a number", domain.ErrMalformedOutput, fields[2])
		}
		if total <= 0 {
			return 0, nil
		}
		return used * 100.0 / total, nil
	}
	return 0, nil
}

// ParseDFUsage returns the use% column of the first data row of df output.
// POSIX (-P) rows carry it in the fifth column, which keeps mount points with
// spaces intact; shorter rows fall back to the second to last field. A
// header-only report yields 0.
func ParseDFUsage(out string) (float64, error) {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return 0, nil
	}

	fields := strings.Fields(lines[1])
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: df row %q has too few fields", domain.ErrMalformedOutput, lines[1])
	}
	raw := fields[len(fields)-2]
	if len(fields) >= 6 {
		raw = fields[4]
	}
	if !strings.HasSuffix(raw, "%") {
		return 0, fmt.Errorf("%w: use%% field %q has no percent sign", domain.ErrMalformedOutput, raw)
	}
	usage, err := parsePercent(strings.TrimSuffix(raw, "%"))
	if err != nil {
		return 0, fmt.Errorf("%w: use%% field %q is not a number", domain.ErrMalformedOutput, raw)
	}
	return usage, nil
}

// parsePercent accepts plain unsigned decimals only. ParseFloat alone would let
// NaN, Inf, signs, exponents and hex floats through.
func parsePercent(raw string) (float64, error) {
	if raw == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range raw {
		if (r < '0' || r > '9') && r != '.' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseFloat(raw, 64)
}
