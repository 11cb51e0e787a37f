package main

import (
	"fmt"

	webgl "github.com/seqsense/webgl-go"
)

func showDebugInfo(gl *webgl.WebGL, logPrint func(msg interface{})) {
	defer func() {
		if r := recover(); r != nil {
			logPrint("failed to get debug info")
		}
	}()

	ri, ok := gl.GetExtension("WEBGL_debug_renderer_info")
	if !ok {
		logPrint("GPU info: hidden by the browser privacy setting")
		return
	}
	logPrint(fmt.Sprintf("GPU: %s %s",
		gl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(),
		gl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
	))
	logPrint(fmt.Sprintf("Max point size: %v",
		gl.GetParameter(gl.JS().Get("ALIASED_POINT_SIZE_RANGE").Int()).Index(1).Float(),
	))
}
