// Package process provides an xrt.ServiceProbe that looks for a running
// process by executable name.
package process

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/common"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/zoobzio/xrt"
)

// commLimit is the length Linux truncates process names to.
const commLimit = 15

// Lister returns the executable names of the running processes.
type Lister func(ctx context.Context) ([]string, error)

// Probe reports whether a process with a given executable name is running.
type Probe struct {
	list Lister
}

// New creates a Probe over the host's process table.
func New() *Probe {
	return &Probe{list: listProcesses}
}

// NewProcFS creates a Probe that reads processes from a procfs mount other
// than /proc, such as a host's table mounted into a container. It only
// applies on Linux.
func NewProcFS(root string) *Probe {
	return &Probe{list: func(ctx context.Context) ([]string, error) {
		ctx = context.WithValue(ctx, common.EnvKey, common.EnvMap{common.HostProcEnvKey: root})
		return listProcesses(ctx)
	}}
}

// NewWithLister creates a Probe over the names returned by list.
func NewWithLister(list Lister) *Probe {
	return &Probe{list: list}
}

// IsServiceRunning implements xrt.ServiceProbe. Names compare
// case-insensitively. A name truncated to the Linux limit matches by prefix.
func (p *Probe) IsServiceRunning(name string) bool {
	names, err := p.list(context.Background())
	if err != nil {
		xrt.Logger().Debug("process listing failed", "error", err)
		return false
	}
	for _, running := range names {
		if matches(running, name) {
			return true
		}
	}
	return false
}

func matches(running, name string) bool {
	if strings.EqualFold(running, name) {
		return true
	}
	return len(running) == commLimit && len(name) > commLimit &&
		strings.EqualFold(running, name[:commLimit])
}

// listProcesses reads every process name. Processes that exit while being
// read are skipped. A name at the truncation limit is replaced by the base
// of the process's first argument when one is available.
func listProcesses(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(procs))
	for _, proc := range procs {
		name, err := proc.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if len(name) == commLimit {
			if args, err := proc.CmdlineSliceWithContext(ctx); err == nil && len(args) > 0 {
				if full := baseName(args[0]); len(full) > commLimit {
					name = full
				}
			}
		}
		names = append(names, name)
	}
	return names, nil
}

// baseName strips both slash and backslash separated directories.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

var _ xrt.ServiceProbe = (*Probe)(nil)
