package params

import (
	"iter"
	"sort"
	"strings"

	"github.com/gridsim/params/lib/util/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
)

var log = logger.GetLogger()

// keySeparator splits the section from the key inside a composite key.
const keySeparator = "/"

// Store is a flat mapping from composite "section/key" strings to string
// values. The zero value is not usable; construct with New, NewWithFs, or
// NewFromFile. A Store is not safe for concurrent use.
type Store struct {
	entries map[string]string
	fs      afero.Fs
}

// New returns an empty store backed by the operating system filesystem.
func New() *Store {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs returns an empty store that performs all file access through fs.
func NewWithFs(fs afero.Fs) *Store {
	return &Store{
		entries: make(map[string]string),
		fs:      fs,
	}
}

// NewFromFile returns a store populated from the file at path.
func NewFromFile(path string) (*Store, error) {
	s := New()
	if err := s.Load(path); err != nil {
		return nil, err
	}
	return s, nil
}

// splitKey decomposes a composite key at the first separator. A key without
// a separator decomposes to the empty section with the whole string as key,
// so a projected store saves as a headerless, reloadable file.
func splitKey(full string) (section, key string) {
	if i := strings.Index(full, keySeparator); i >= 0 {
		return full[:i], full[i+1:]
	}
	return "", full
}

func joinKey(section, key string) string {
	return section + keySeparator + key
}

func (s *Store) lookup(key string) (string, error) {
	value, ok := s.entries[key]
	if !ok {
		return "", &KeyNotFoundError{Key: key}
	}
	return value, nil
}

// GetString returns the raw stored value for a composite key.
func (s *Store) GetString(key string) (string, error) {
	return s.lookup(key)
}

// GetInt returns the value for a composite key parsed as a decimal integer.
func (s *Store) GetInt(key string) (int, error) {
	raw, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	value, err := cast.ToIntE(raw)
	if err != nil {
		return 0, &TypeConversionError{Key: key, Value: raw, Type: "int", Err: err}
	}
	return value, nil
}

// GetInt64 returns the value for a composite key parsed as a decimal integer.
func (s *Store) GetInt64(key string) (int64, error) {
	raw, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	value, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, &TypeConversionError{Key: key, Value: raw, Type: "int64", Err: err}
	}
	return value, nil
}

// GetFloat64 returns the value for a composite key parsed as a floating-point
// literal.
func (s *Store) GetFloat64(key string) (float64, error) {
	raw, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, &TypeConversionError{Key: key, Value: raw, Type: "float64", Err: err}
	}
	return value, nil
}

// GetBool returns the value for a composite key parsed as a boolean.
func (s *Store) GetBool(key string) (bool, error) {
	raw, err := s.lookup(key)
	if err != nil {
		return false, err
	}
	value, err := cast.ToBoolE(raw)
	if err != nil {
		return false, &TypeConversionError{Key: key, Value: raw, Type: "bool", Err: err}
	}
	return value, nil
}

// SetString stores value at the composite key, inserting or overwriting.
func (s *Store) SetString(key, value string) {
	s.entries[key] = value
}

// SetInt stores the canonical decimal form of value at the composite key.
func (s *Store) SetInt(key string, value int) {
	s.entries[key] = cast.ToString(value)
}

// SetInt64 stores the canonical decimal form of value at the composite key.
func (s *Store) SetInt64(key string, value int64) {
	s.entries[key] = cast.ToString(value)
}

// SetFloat64 stores the shortest round-tripping decimal form of value at the
// composite key.
func (s *Store) SetFloat64(key string, value float64) {
	s.entries[key] = cast.ToString(value)
}

// SetBool stores "true" or "false" at the composite key.
func (s *Store) SetBool(key string, value bool) {
	s.entries[key] = cast.ToString(value)
}

// Has reports whether the store holds the composite key.
func (s *Store) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// Delete removes the composite key and reports whether it was present.
func (s *Store) Delete(key string) bool {
	_, ok := s.entries[key]
	delete(s.entries, key)
	return ok
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// Keys returns every composite key in ascending lexicographic order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// All yields every (composite key, value) pair in ascending key order. The
// sequence is read-only; mutating the store during iteration is undefined.
func (s *Store) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range s.Keys() {
			if !yield(key, s.entries[key]) {
				return
			}
		}
	}
}
