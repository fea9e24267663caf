// Copyright 2020 Aleksandr Demakin. All rights reserved.

package diag

import "fmt"

// HardwareInfo describes the machine running the sweeps.
// The approximations never use hardware FMA, but its presence
// tells how much a native implementation could gain.
type HardwareInfo struct {
	Arch   string
	HasFMA bool
}

func (h HardwareInfo) String() string {
	return fmt.Sprintf("arch=%s fma=%v", h.Arch, h.HasFMA)
}

// Hardware returns information about the current cpu.
func Hardware() HardwareInfo {
	return hardware()
}
