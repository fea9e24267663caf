// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build arm64

package diag

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// fused multiply-add is a part of the mandatory floating point unit on arm64.
func hardware() HardwareInfo {
	return HardwareInfo{
		Arch:   runtime.GOARCH,
		HasFMA: cpu.ARM64.HasFP,
	}
}
