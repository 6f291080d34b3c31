//go:build windows

package drives

import "golang.org/x/sys/windows"

var getDriveType = windows.GetDriveType

func driveKind(root string) Kind {
	p, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return KindUnknown
	}
	switch getDriveType(p) {
	case windows.DRIVE_FIXED:
		return KindFixed
	case windows.DRIVE_REMOVABLE:
		return KindRemovable
	case windows.DRIVE_REMOTE:
		return KindNetwork
	case windows.DRIVE_CDROM:
		return KindCDROM
	case windows.DRIVE_RAMDISK:
		return KindRAMDisk
	default:
		return KindUnknown
	}
}
