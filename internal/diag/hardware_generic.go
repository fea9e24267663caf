// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build !amd64 && !arm64

package diag

import "runtime"

func hardware() HardwareInfo {
	return HardwareInfo{Arch: runtime.GOARCH}
}
