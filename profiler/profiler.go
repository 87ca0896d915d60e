// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package profiler defines the hook through which hosts time frame
// recording. The rendering core never measures anything itself.
package profiler

type Group interface {
	Start(label string) Group
	End()
}

type nop struct{}

func (nop) Start(label string) Group { return nop{} }
func (nop) End()                     {}

// Nop returns a Group that discards all measurements.
func Nop() Group {
	return nop{}
}
