package model

import (
	"errors"
	"fmt"
	"io"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

var ErrEmpty = errors.New("model has no points")

// Model is a loaded point cloud asset.
type Model struct {
	Cloud    *pc.PointCloud
	Min, Max mat.Vec3
}

// Load parses a PCD stream.
func Load(r io.Reader) (*Model, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}
	return New(pp)
}

// New wraps a point cloud which must have x, y and z fields.
func New(pp *pc.PointCloud) (*Model, error) {
	if pp.Points == 0 {
		return nil, ErrEmpty
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	m := &Model{Cloud: pp}
	first := true
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		if first {
			m.Min, m.Max = v, v
			first = false
			continue
		}
		for i := 0; i < 3; i++ {
			if v[i] < m.Min[i] {
				m.Min[i] = v[i]
			}
			if v[i] > m.Max[i] {
				m.Max[i] = v[i]
			}
		}
	}
	return m, nil
}

func (m *Model) Center() mat.Vec3 {
	return m.Min.Add(m.Max).Mul(0.5)
}

// Radius returns the half diagonal of the bounding box.
func (m *Model) Radius() float32 {
	return m.Max.Sub(m.Min).Norm() / 2
}

// Positions returns packed xyz coordinates for a vertex buffer.
func (m *Model) Positions() []float32 {
	out := make([]float32, 0, m.Cloud.Points*3)
	it, err := m.Cloud.Vec3Iterator()
	if err != nil {
		return nil
	}
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

// Matrix returns the model transform for the given uniform scale.
func Matrix(scale float64) mat.Mat4 {
	s := float32(scale)
	return mat.Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}

// Markers builds an xyz point cloud from points.
func Markers(points []mat.Vec3) *pc.PointCloud {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version: 0.7,
			Fields:  []string{"x", "y", "z"},
			Size:    []int{4, 4, 4},
			Type:    []string{"F", "F", "F"},
			Count:   []int{1, 1, 1},
			Width:   len(points),
			Height:  1,
		},
		Points: len(points),
	}
	pp.Data = make([]byte, len(points)*pp.Stride())
	if len(points) == 0 {
		return pp
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return pp
	}
	for _, p := range points {
		it.SetVec3(p)
		it.Incr()
	}
	return pp
}
