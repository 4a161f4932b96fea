// Package util holds small helpers shared by the commands and sessions.
package util

import (
	"fmt"
	"os"
	"regexp"

	"github.com/printstack/printstack/filesystem"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^\w.-]+`)
	filenameEdges       = regexp.MustCompile(`^[_.-]+|[_.-]+$`)
)

// SanitizeFilename turns a script name such as "Bridge test #2" into "Bridge_test_2".
func SanitizeFilename(name string) string {
	return filenameEdges.ReplaceAllString(unsafeFilenameChars.ReplaceAllString(name, "_"), "")
}

// Quantify formats n with the matching noun, as in "1 layer" or "3 layers".
func Quantify(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// TerminalSize reports the size of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

func Max[T constraints.Ordered](first T, rest ...T) T {
	for _, v := range rest {
		if v > first {
			first = v
		}
	}
	return first
}

// Delete removes path, recursively when it is a directory. A missing path is an error.
func Delete(path string) error {
	fs := filesystem.API()
	if _, err := fs.Stat(path); err != nil {
		return err
	}
	return fs.RemoveAll(path)
}
