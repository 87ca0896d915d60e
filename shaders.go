package graphing

import (
	_ "embed"
)

//go:embed shaders/static.wgsl
var staticWGSL []byte

//go:embed shaders/curve.wgsl
var curveWGSL []byte
