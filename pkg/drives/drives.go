// Package drives detects letter-based mount roots such as C:\ or a mapped Z:\.
package drives

import (
	"fmt"
	"os"

	"github.com/nexplorer/nexplorer/pkg/fsutils"
	"github.com/shirou/gopsutil/v3/disk"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type Kind int

const (
	KindUnknown Kind = iota
	KindFixed
	KindRemovable
	KindNetwork
	KindCDROM
	KindRAMDisk
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindRemovable:
		return "removable"
	case KindNetwork:
		return "network"
	case KindCDROM:
		return "cdrom"
	case KindRAMDisk:
		return "ramdisk"
	default:
		return "unknown"
	}
}

// Drive is a detected mount root. It is recomputed on every refresh.
type Drive struct {
	Root  string
	Label string
	Kind  Kind
}

type StatFunc func(name string) (os.FileInfo, error)

var diskUsage = disk.Usage

// Enumerator probes the 26 drive letters.
type Enumerator struct {
	stat    StatFunc
	kind    func(root string) Kind
	workers int
}

// NewEnumerator creates an enumerator that probes with stat, or os.Stat when stat is nil.
func NewEnumerator(stat StatFunc) *Enumerator {
	if stat == nil {
		stat = os.Stat
	}
	return &Enumerator{stat: stat, kind: driveKind, workers: DefaultWorkers}
}

// List returns the existing drive roots in ascending letter order.
// An inaccessible letter is treated as absent.
func (e *Enumerator) List() []Drive {
	found := make([]*Drive, len(letters))
	pool := newProbePool(e.workers, e.probe)
	for i, letter := range letters {
		pool.Submit(probeRequest{
			Index: i,
			Root:  string(letter) + `:\`,
			Callback: func(index int, drive Drive, ok bool) {
				if ok {
					found[index] = &drive
				}
			},
		})
	}
	pool.Wait()

	var drives []Drive
	for _, d := range found {
		if d != nil {
			drives = append(drives, *d)
		}
	}
	return drives
}

func (e *Enumerator) probe(root string) (Drive, bool) {
	info, err := e.stat(root)
	if err != nil || info == nil || !info.IsDir() {
		return Drive{}, false
	}
	return Drive{
		Root:  root,
		Label: label(root),
		Kind:  e.kind(root),
	}, true
}

func label(root string) string {
	usage, err := diskUsage(root)
	if err != nil || usage == nil || usage.Total == 0 {
		return fmt.Sprintf("%s (%s)", root, root)
	}
	return fmt.Sprintf("%s (%s, %s)", root, root, fsutils.ShortSize(int64(usage.Total)))
}
