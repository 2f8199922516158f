package election

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// resultsFieldCount is the column count of the results format:
// Name \t DemVotes \t RepVotes \t Weight.
const resultsFieldCount = 4

// LoadResultsFile opens path and parses it with LoadResults.
func LoadResultsFile(path string) ([]*State, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("election: open results: %w", err)
	}
	defer f.Close()
	return LoadResults(f)
}

// LoadResults parses the tab-separated results format: one header line,
// then one record per line as Name \t DemVotes \t RepVotes \t Weight.
// Blank lines are skipped; a line that does not yield four fields with
// integer vote counts fails with ErrBadRecord wrapped with its line number.
//
// Only the first three tabs split a line, so a trailing column of free-form
// text after the weight is rejected by the integer parse rather than by the
// splitter — the weight field carries everything past the third tab.
func LoadResults(r io.Reader) ([]*State, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("election: read results: %w", err)
		}
		return nil, fmt.Errorf("election: missing header line: %w", ErrBadRecord)
	}

	var states []*State
	line := 1
	for sc.Scan() {
		line++
		raw := sc.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		s, err := parseResultsLine(raw)
		if err != nil {
			return nil, fmt.Errorf("election: results line %d: %w", line, err)
		}
		states = append(states, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("election: read results: %w", err)
	}
	return states, nil
}

// parseResultsLine splits one record line on its first three tabs and
// validates the fields through NewState.
func parseResultsLine(raw string) (*State, error) {
	fields := strings.SplitN(raw, "\t", resultsFieldCount)
	if len(fields) < resultsFieldCount {
		return nil, fmt.Errorf("want %d tab-separated fields, got %d: %w",
			resultsFieldCount, len(fields), ErrBadRecord)
	}
	name := strings.TrimSpace(fields[0])
	nums := make([]int, resultsFieldCount-1)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("field %d %q: %w", i+2, f, ErrBadRecord)
		}
		nums[i] = v
	}
	return NewState(name, nums[0], nums[1], nums[2])
}
