// Copyright 2025 go-bfp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vpu

import (
	"os"
	"strconv"
)

// DispatchLevel identifies which kernel tier the library selected at init.
type DispatchLevel int

const (
	// DispatchReference selects the plain scalar reference kernels.
	DispatchReference DispatchLevel = iota

	// DispatchUnrolled selects the chunk-unrolled kernels, used when the
	// host has a wide vector unit the compiler can target.
	DispatchUnrolled
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchReference:
		return "reference"
	case DispatchUnrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// currentLevel is the detected tier for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the kernel tier selected at init.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// HasAccel reports whether the unrolled kernel tier is active.
func HasAccel() bool {
	return currentLevel == DispatchUnrolled
}

// NoUnrollEnv checks the BFP_NO_UNROLL environment variable. When set, the
// library uses the reference kernels regardless of CPU capabilities. This is
// useful for testing and debugging.
func NoUnrollEnv() bool {
	val := os.Getenv("BFP_NO_UNROLL")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
