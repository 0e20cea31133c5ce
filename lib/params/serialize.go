package params

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gridsim/params/lib/util/logger"
)

// Save writes the store to the file at path in grouped section form,
// truncating any existing file.
func (s *Store) Save(path string) error {
	file, err := s.fs.Create(path)
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":   "(Store) Save",
			"path": path,
		}).Error("cannot_open_destination_file")
		return &FileOpenError{Path: path, Op: "write", Err: err}
	}
	defer file.Close()

	if err := s.Write(file); err != nil {
		return err
	}

	log.WithFields(logger.Fields{
		"at":      "(Store) Save",
		"path":    path,
		"entries": s.Len(),
	}).Debug("saved_parameter_file")
	return nil
}

// Write emits the store to w in grouped section form. Entries are walked in
// ascending composite-key order, which keeps each section's keys contiguous;
// a section change emits one blank line and a bracketed header before the
// next assignment. Entries in the empty-string section sort first and are
// emitted without any header, which round-trips through Load.
func (s *Store) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	current := ""
	for _, full := range s.Keys() {
		section, key := splitKey(full)
		if section != current {
			fmt.Fprintf(bw, "\n[%s]\n", section)
			current = section
		}
		fmt.Fprintf(bw, "%s = %s\n", key, s.entries[full])
	}
	return bw.Flush()
}

// Print writes a flat diagnostic listing of every entry in ascending
// composite-key order. The output is not a loadable parameter file.
func (s *Store) Print(w io.Writer) {
	fmt.Fprintln(w, "*** Parameters ***")
	for key, value := range s.All() {
		fmt.Fprintf(w, "%s: %s\n", key, value)
	}
	fmt.Fprintln(w)
}
