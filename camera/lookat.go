package camera

import (
	"github.com/seqsense/pcgol/mat"
)

const parallelEpsilon = 1e-12

var (
	upY = mat.Vec3{0, 1, 0}
	upZ = mat.Vec3{0, 0, -1}
)

// ViewMatrix returns the world to camera transform of the pose with +Y up.
func ViewMatrix(pose Pose) mat.Mat4 {
	f := pose.Target.Sub(pose.Position)
	if f.NormSq() == 0 {
		return mat.Translate(-pose.Position[0], -pose.Position[1], -pose.Position[2])
	}
	f = f.Normalized()
	s := f.Cross(upY)
	if s.NormSq() < parallelEpsilon {
		s = f.Cross(upZ)
	}
	s = s.Normalized()
	u := s.Cross(f)
	e := pose.Position
	return mat.Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-s.Dot(e), -u.Dot(e), f.Dot(e), 1,
	}
}

// Project maps p through the projection-view matrix m to canvas pixels.
// ok is false if p is behind the camera or outside of the view volume.
func Project(m mat.Mat4, p mat.Vec3, width, height int) (x, y float32, ok bool) {
	cx := m[4*0+0]*p[0] + m[4*1+0]*p[1] + m[4*2+0]*p[2] + m[4*3+0]
	cy := m[4*0+1]*p[0] + m[4*1+1]*p[1] + m[4*2+1]*p[2] + m[4*3+1]
	cz := m[4*0+2]*p[0] + m[4*1+2]*p[1] + m[4*2+2]*p[2] + m[4*3+2]
	cw := m[4*0+3]*p[0] + m[4*1+3]*p[1] + m[4*2+3]*p[2] + m[4*3+3]
	if cw <= 0 {
		return 0, 0, false
	}
	nx, ny, nz := cx/cw, cy/cw, cz/cw
	x = (nx + 1) / 2 * float32(width)
	y = (1 - ny) / 2 * float32(height)
	ok = -1 <= nx && nx <= 1 && -1 <= ny && ny <= 1 && -1 <= nz && nz <= 1
	return x, y, ok
}
