package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var osUserHomeDir = os.UserHomeDir

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, p[2:])
		}
	}
	return p
}

// IsUNC reports whether p starts with two path separators, e.g. \\server\share.
func IsUNC(p string) bool {
	return len(p) >= 2 && isSeparator(p[0]) && isSeparator(p[1])
}

// FilesystemRoot returns the root the given path lives under:
// a drive root like C:\ for drive-letter paths, \\server\share\ for UNC paths and / otherwise.
func FilesystemRoot(p string) string {
	if IsDriveLetterPath(p) {
		return strings.ToUpper(p[:1]) + `:\`
	}
	if IsUNC(p) {
		parts := strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' })
		if len(parts) >= 2 {
			return `\\` + parts[0] + `\` + parts[1] + `\`
		}
		return p
	}
	return "/"
}

// IsDriveLetterPath reports whether p starts with a drive letter followed by a colon.
func IsDriveLetterPath(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}
