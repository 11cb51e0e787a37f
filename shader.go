package main

const vsSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	uniform mat4 uModelMatrix;
	uniform mat4 uViewMatrix;
	uniform mat4 uProjectionMatrix;
	uniform float uYMin;
	uniform float uYRange;
	uniform float uPointSizeBase;
	uniform vec3 uTint;
	vec4 viewPosition;
	lowp float c;
	out lowp vec4 vColor;

	void main(void) {
		viewPosition = uViewMatrix * uModelMatrix * aVertexPosition;
		gl_Position = uProjectionMatrix * viewPosition;
		gl_PointSize = clamp(uPointSizeBase / length(viewPosition), 1.0, uPointSizeBase);

		c = clamp((aVertexPosition[1] - uYMin) / uYRange, 0.0, 1.0);
		vColor = vec4(mix(vec3(0.35, 0.4, 0.5), vec3(0.95, 0.9, 0.85), c) * uTint, 1.0);
	}
`

const vsMarkerSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	uniform mat4 uViewMatrix;
	uniform mat4 uProjectionMatrix;
	uniform float uPointSizeBase;
	uniform vec3 uColor;
	vec4 viewPosition;
	out lowp vec4 vColor;

	void main(void) {
		viewPosition = uViewMatrix * aVertexPosition;
		gl_Position = uProjectionMatrix * viewPosition;
		gl_PointSize = uPointSizeBase * 3.0;
		vColor = vec4(uColor, 1.0);
	}
`

const fsSource = `#version 300 es
	in lowp vec4 vColor;
	out lowp vec4 outColor;

	void main(void) {
		outColor = vColor;
	}
`
