// Package workspace edits the Cargo workspace manifest's members list.
//
// The manifest is treated as a flat ordered text file: the members list
// is terminated by a line whose trimmed content is "]", and new entries
// are spliced in immediately before it so the closing line always stays
// last.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

const closingMarker = "]"

// ErrMemberExists is returned by AddMember when the manifest already
// lists the member.
var ErrMemberExists = errors.New("member already present in manifest")

// AddMember inserts a quoted member entry immediately before the
// closing bracket line of the manifest at path, preserving the order of
// existing entries.
func AddMember(path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	if memberIndex(lines, name) >= 0 {
		return fmt.Errorf("%s: %q: %w", path, name, ErrMemberExists)
	}

	idx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == closingMarker {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%s: no closing %q line found in members list", path, closingMarker)
	}

	entry := fmt.Sprintf("    %q,", name)
	lines = slices.Insert(lines, idx, entry)
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), info.Mode())
}

// HasMember reports whether the manifest at path already lists name.
func HasMember(path, name string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return memberIndex(strings.Split(string(data), "\n"), name) >= 0, nil
}

// Members returns the member names in manifest order.
func Members(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var members []string
	inList := false
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if !inList {
			if strings.HasPrefix(trimmed, "members") && strings.HasSuffix(trimmed, "[") {
				inList = true
			}
			continue
		}
		if trimmed == closingMarker {
			break
		}
		if name, ok := parseEntry(trimmed); ok {
			members = append(members, name)
		}
	}
	return members, nil
}

func memberIndex(lines []string, name string) int {
	for i, line := range lines {
		if entry, ok := parseEntry(strings.TrimSpace(line)); ok && entry == name {
			return i
		}
	}
	return -1
}

// parseEntry extracts the member name from a `"name",` list line.
func parseEntry(trimmed string) (string, bool) {
	trimmed = strings.TrimSuffix(trimmed, ",")
	if len(trimmed) < 2 || trimmed[0] != '"' || trimmed[len(trimmed)-1] != '"' {
		return "", false
	}
	return trimmed[1 : len(trimmed)-1], true
}
