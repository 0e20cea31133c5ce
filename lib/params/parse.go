package params

import (
	"bufio"
	"io"
	"strings"

	"github.com/gridsim/params/lib/util/logger"
	"github.com/samber/oops"
)

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = '#'

// normalizeLine strips a trailing comment and surrounding ASCII spaces.
// Only ' ' counts as trimmable space; tabs survive and may legally end up
// inside keys and values.
func normalizeLine(line string) string {
	if i := strings.IndexByte(line, commentMarker); i >= 0 {
		line = line[:i]
	}
	return strings.Trim(line, " ")
}

// splitAssignment splits a non-header line at its first '='. Both sides are
// trimmed of ASCII spaces; a missing '=' or an empty side is malformed.
func splitAssignment(section, line string) (key, value string, err error) {
	i := strings.Index(line, "=")
	if i < 0 {
		return "", "", &MalformedLineError{
			Section: section,
			Line:    line,
			Reason:  "malformed expression line",
		}
	}
	key = strings.Trim(line[:i], " ")
	value = strings.Trim(line[i+1:], " ")
	if key == "" || value == "" {
		return "", "", &MalformedLineError{
			Section: section,
			Line:    line,
			Reason:  "missing key or value",
		}
	}
	return key, value, nil
}

// Load merges the assignments in the file at path into the store. Existing
// entries survive unless the file redefines them; the last assignment for a
// composite key wins, so repeated loads act as an override mechanism.
// The store is left untouched if any line fails to parse.
func (s *Store) Load(path string) error {
	file, err := s.fs.Open(path)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":   "(Store) Load",
			"path": path,
		}).Error("cannot_open_parameter_file")
		return &FileOpenError{Path: path, Op: "read", Err: err}
	}
	defer file.Close()

	if err := s.LoadReader(file); err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":   "(Store) Load",
			"path": path,
		}).Error("failed_to_parse_parameter_file")
		return err
	}

	log.WithFields(logger.Fields{
		"at":      "(Store) Load",
		"path":    path,
		"entries": s.Len(),
	}).Debug("loaded_parameter_file")
	return nil
}

// LoadReader merges the assignments read from r into the store, with the
// same semantics as Load. Lines are staged and merged only once the whole
// input has parsed, so a malformed line leaves the store unchanged.
func (s *Store) LoadReader(r io.Reader) error {
	staged := make(map[string]string)
	section := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := normalizeLine(scanner.Text())
		if line == "" {
			continue
		}

		// A section header replaces the current section for every
		// assignment that follows it.
		if line[0] == '[' && line[len(line)-1] == ']' {
			section = strings.Trim(line[1:len(line)-1], " ")
			continue
		}

		key, value, err := splitAssignment(section, line)
		if err != nil {
			return err
		}
		staged[joinKey(section, key)] = value
	}
	if err := scanner.Err(); err != nil {
		return oops.Wrapf(err, "reading parameter text")
	}

	for key, value := range staged {
		s.entries[key] = value
	}

	log.WithFields(logger.Fields{
		"at":     "(Store) LoadReader",
		"staged": len(staged),
		"total":  s.Len(),
	}).Debug("merged_parameter_entries")
	return nil
}
