// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build amd64

package diag

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func hardware() HardwareInfo {
	return HardwareInfo{
		Arch:   runtime.GOARCH,
		HasFMA: cpu.X86.HasFMA,
	}
}
