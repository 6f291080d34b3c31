//go:build !windows

package drives

func driveKind(string) Kind {
	return KindUnknown
}
