//go:build windows

package registry

import (
	"github.com/zoobzio/xrt"
	"golang.org/x/sys/windows/registry"
)

// System reads the Windows registry, always from the 64-bit view.
type System struct{}

// NewSystem creates a reader for the Windows registry.
func NewSystem() System {
	return System{}
}

// ReadString implements xrt.RegistryReader.
func (System) ReadString(root xrt.RegistryRoot, subkey, value string) (string, bool) {
	hive := registry.LOCAL_MACHINE
	if root == xrt.RegistryCurrentUser {
		hive = registry.CURRENT_USER
	}
	key, err := registry.OpenKey(hive, subkey, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return "", false
	}
	defer key.Close()

	s, _, err := key.GetStringValue(value)
	if err != nil {
		return "", false
	}
	return s, true
}

var _ xrt.RegistryReader = System{}
