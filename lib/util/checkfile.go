package util

import (
	"github.com/spf13/afero"
)

// CheckFileExists reports whether fpath exists on fs and can be stat'd.
func CheckFileExists(fs afero.Fs, fpath string) bool {
	_, e := fs.Stat(fpath)
	return e == nil
}
