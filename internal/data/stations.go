package data

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadStationIDs reads one station id per line, skipping blanks, then applies
// offset and limit (0 disables either).
func LoadStationIDs(path string, offset, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read station file: %w", err)
	}
	defer f.Close()

	var ids []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		id := strings.TrimSpace(sc.Text())
		if id != "" {
			ids = append(ids, id)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse station file: %w", err)
	}

	if offset > 0 {
		if offset >= len(ids) {
			return []string{}, nil
		}
		ids = ids[offset:]
	}
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return ids, nil
}

// WriteIDs writes one id per line.
func WriteIDs(path string, ids []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, id := range ids {
		if _, err := w.WriteString(id + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
