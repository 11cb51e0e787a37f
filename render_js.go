package main

import (
	"math"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/modelviewer/backdrop"
	"github.com/seqsense/modelviewer/model"
)

const (
	zNear = 0.01
	zFar  = 1000.0

	aVertexPosition = 0
)

var markerColor = mat.Vec3{1.0, 0.8, 0.2}

type renderer struct {
	gl *webgl.WebGL

	program, programMarker webgl.Program

	uModelMatrix, uViewMatrix, uProjectionMatrix webgl.Location
	uYMin, uYRange, uPointSizeBase, uTint        webgl.Location
	uViewMatrixMarker, uProjectionMatrixMarker   webgl.Location
	uPointSizeBaseMarker, uColorMarker           webgl.Location
	posBuf, markerBuf                            webgl.Buffer
	nPoints, nMarkers, markerStride              int
	projection                                   mat.Mat4
	width, height                                int
	fov                                          float64
	pointSize                                    float32
}

func newRenderer(gl *webgl.WebGL, fovDeg float64, pointSize float32) (*renderer, error) {
	program, err := newProgram(gl, vsSource, fsSource)
	if err != nil {
		return nil, err
	}
	programMarker, err := newProgram(gl, vsMarkerSource, fsSource)
	if err != nil {
		return nil, err
	}
	r := &renderer{
		gl:            gl,
		program:       program,
		programMarker: programMarker,

		uModelMatrix:      gl.GetUniformLocation(program, "uModelMatrix"),
		uViewMatrix:       gl.GetUniformLocation(program, "uViewMatrix"),
		uProjectionMatrix: gl.GetUniformLocation(program, "uProjectionMatrix"),
		uYMin:             gl.GetUniformLocation(program, "uYMin"),
		uYRange:           gl.GetUniformLocation(program, "uYRange"),
		uPointSizeBase:    gl.GetUniformLocation(program, "uPointSizeBase"),
		uTint:             gl.GetUniformLocation(program, "uTint"),

		uViewMatrixMarker:       gl.GetUniformLocation(programMarker, "uViewMatrix"),
		uProjectionMatrixMarker: gl.GetUniformLocation(programMarker, "uProjectionMatrix"),
		uPointSizeBaseMarker:    gl.GetUniformLocation(programMarker, "uPointSizeBase"),
		uColorMarker:            gl.GetUniformLocation(programMarker, "uColor"),

		posBuf:    gl.CreateBuffer(),
		markerBuf: gl.CreateBuffer(),
		fov:       fovDeg * math.Pi / 180,
		pointSize: pointSize,
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearDepth(1.0)
	gl.EnableVertexAttribArray(aVertexPosition)

	gl.UseProgram(program)
	gl.Uniform1f(r.uPointSizeBase, pointSize)
	gl.Uniform3fv(r.uTint, mat.Vec3{1, 1, 1})
	gl.UseProgram(programMarker)
	gl.Uniform1f(r.uPointSizeBaseMarker, pointSize)
	gl.Uniform3fv(r.uColorMarker, markerColor)
	return r, nil
}

// resize updates the projection if the canvas size changed.
func (r *renderer) resize(width, height int) {
	if width == r.width && height == r.height || width == 0 || height == 0 {
		return
	}
	r.width, r.height = width, height
	r.gl.Canvas.SetWidth(width)
	r.gl.Canvas.SetHeight(height)
	r.projection = mat.Perspective(
		float32(r.fov),
		float32(width)/float32(height),
		zNear, zFar,
	)
	r.gl.UseProgram(r.program)
	r.gl.UniformMatrix4fv(r.uProjectionMatrix, false, r.projection)
	r.gl.UseProgram(r.programMarker)
	r.gl.UniformMatrix4fv(r.uProjectionMatrixMarker, false, r.projection)
	r.gl.Viewport(0, 0, width, height)
}

func (r *renderer) setModel(m *model.Model) {
	r.nPoints = m.Cloud.Points
	if r.nPoints == 0 {
		return
	}
	r.gl.BindBuffer(r.gl.ARRAY_BUFFER, r.posBuf)
	r.gl.BufferData(r.gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(m.Positions()), r.gl.STATIC_DRAW)

	yRange := m.Max[1] - m.Min[1]
	if yRange <= 0 {
		yRange = 1
	}
	r.gl.UseProgram(r.program)
	r.gl.Uniform1f(r.uYMin, m.Min[1])
	r.gl.Uniform1f(r.uYRange, yRange)
}

func (r *renderer) setMarkers(pp *pc.PointCloud) {
	r.nMarkers = pp.Points
	r.markerStride = pp.Stride()
	if r.nMarkers == 0 {
		return
	}
	r.gl.BindBuffer(r.gl.ARRAY_BUFFER, r.markerBuf)
	r.gl.BufferData(r.gl.ARRAY_BUFFER, webgl.ByteArrayBuffer(pp.Data), r.gl.STATIC_DRAW)
}

func (r *renderer) setBackdrop(b backdrop.Backdrop) {
	c := b.Bottom
	r.gl.ClearColor(c[0], c[1], c[2], 1.0)
	r.gl.UseProgram(r.program)
	r.gl.Uniform3fv(r.uTint, mat.Vec3(b.Tint))
}

// projectionView returns the matrix mapping world points to clip space.
func (r *renderer) projectionView(view mat.Mat4) mat.Mat4 {
	return r.projection.Mul(view)
}

func (r *renderer) draw(view, modelMatrix mat.Mat4) {
	gl := r.gl
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.nPoints > 0 {
		gl.UseProgram(r.program)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.posBuf)
		gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, 3*4, 0)
		gl.UniformMatrix4fv(r.uModelMatrix, false, modelMatrix)
		gl.UniformMatrix4fv(r.uViewMatrix, false, view)
		gl.DrawArrays(gl.POINTS, 0, r.nPoints)
	}
	if r.nMarkers > 0 {
		gl.UseProgram(r.programMarker)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.markerBuf)
		gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, r.markerStride, 0)
		gl.UniformMatrix4fv(r.uViewMatrixMarker, false, view)
		gl.DrawArrays(gl.POINTS, 0, r.nMarkers)
	}
}
