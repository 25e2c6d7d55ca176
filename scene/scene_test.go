// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/base/tolassert"
	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/math32"
	"cogentcore.org/tumble/shaders"
	"cogentcore.org/tumble/system"
	"cogentcore.org/tumble/system/driver/offscreen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVector(t *testing.T, want, got math32.Vector3, msgAndArgs ...any) {
	t.Helper()
	w, g := want.Array(), got.Array()
	tolassert.EqualTolSlice(t, w[:], g[:], tol, msgAndArgs...)
}

func TestVertex(t *testing.T) {
	v := NewVertex(math32.Vec3(1, 2, 3), math32.Vec2(0, 1))
	assert.Equal(t, Default, v.State)
	assert.Equal(t, math32.Vec3(1, 2, 3), v.Position())

	v.MoveTo(math32.Vec3(4, 5, 6))
	assert.Equal(t, Overridden, v.State)
	assert.Equal(t, math32.Vec3(4, 5, 6), v.Position())
	assert.Equal(t, math32.Vec3(1, 2, 3), v.DefaultPosition)
	assert.Equal(t, gpu.RenderVertex{Position: [3]float32{4, 5, 6}, TexCoords: [2]float32{0, 1}}, v.Render())

	v.Reset()
	assert.Equal(t, Default, v.State)
	assert.Equal(t, math32.Vec3(1, 2, 3), v.Position())
	assert.Equal(t, [3]float32{1, 2, 3}, v.Render().Position)

	// rotating starts from the default position
	v.RotateAround(math32.Vec3(0, 0, math32.Pi/2), math32.Vec3(1, 0, 3))
	assert.Equal(t, Overridden, v.State)
	assertVector(t, math32.Vec3(-1, 0, 3), v.Position())

	// and continues from the current one
	v.RotateAround(math32.Vec3(0, 0, math32.Pi/2), math32.Vec3(1, 0, 3))
	assertVector(t, math32.Vec3(1, -2, 3), v.Position())

	// rotating around itself does not move it
	p := v.Position()
	v.RotateAround(math32.Vec3(0.3, -1.2, 2), p)
	assertVector(t, p, v.Position())
}

func TestShape(t *testing.T) {
	assert.Equal(t, math32.Vector3{}, (&Shape{}).Centroid())

	q := NewQuad("q", math32.Vec3(1.5, 0, 0), 1)
	require.Len(t, q.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 0, 3, 2}, q.Indices)
	assert.Equal(t, math32.Vec3(1, -0.5, 0), q.Vertices[0].Position())
	assert.Equal(t, math32.Vec3(1, 0.5, 0), q.Vertices[1].Position())
	assert.Equal(t, math32.Vec3(2, 0.5, 0), q.Vertices[2].Position())
	assert.Equal(t, math32.Vec2(1, 0), q.Vertices[3].TexCoords)
	assertVector(t, math32.Vec3(1.5, 0, 0), q.Centroid())

	q.RotateAround(math32.Vec3(0.4, 1, 0), q.Centroid())
	assertVector(t, math32.Vec3(1.5, 0, 0), q.Centroid())

	q.RotateAround(math32.Vec3(0, math32.Pi, 0), math32.Vector3{})
	assertVector(t, math32.Vec3(-1.5, 0, 0), q.Centroid())

	rv := q.RenderVertices()
	require.Len(t, rv, 4)
	assert.Equal(t, q.Vertices[2].Render(), rv[2])

	q.Reset()
	for i := range q.Vertices {
		assert.Equal(t, Default, q.Vertices[i].State)
	}
	assert.Equal(t, math32.Vec3(1.5, 0, 0), q.Centroid())

	q.Indices[0] = 9
	assert.Equal(t, uint32(0), QuadIndices[0])
}

func TestPivot(t *testing.T) {
	q := NewQuad("q", math32.Vec3(0, 0.5, 0), 1)
	assertVector(t, math32.Vec3(0, 0.5, 0), CentroidPivot().Of(q))
	assert.Equal(t, math32.Vec3(1, 2, 3), FixedPivot(math32.Vec3(1, 2, 3)).Of(q))
	assert.Equal(t, "centroid", CentroidPivot().String())
}

func TestTimer(t *testing.T) {
	start := time.Unix(1000, 0)
	tm := NewTimer(start)
	assert.Equal(t, 16*time.Millisecond, tm.Tick(start.Add(16*time.Millisecond)))
	assert.Equal(t, 4*time.Millisecond, tm.Tick(start.Add(20*time.Millisecond)))
	assert.Equal(t, time.Duration(0), tm.Tick(start.Add(10*time.Millisecond)))
	assert.Equal(t, 5*time.Millisecond, tm.Tick(start.Add(15*time.Millisecond)))
}

func TestAngle(t *testing.T) {
	l := NewLoop()
	tolassert.EqualTol(t, 0.5, l.Angle(time.Second), tol)
	tolassert.EqualTol(t, 0.008, l.Angle(16*time.Millisecond), tol)
	assert.Equal(t, float32(0), l.Angle(999*time.Nanosecond))
}

func TestTransform(t *testing.T) {
	objs := DemoObjects("img")
	l := NewLoop(objs...)
	l.AngularVelocity = math32.Pi / 2
	l.Transform(time.Microsecond)

	// centroid pivots stay in place
	assertVector(t, math32.Vector3{}, objs[0].Shape.Centroid())
	assertVector(t, math32.Vec3(0, 0.5, 0), objs[2].Shape.Centroid())
	// the fixed pivot moves the shape around the origin
	assertVector(t, math32.Vec3(0, 0, -1.5), objs[1].Shape.Centroid())
	assertVector(t, math32.Vec3(0, -0.5, -1), objs[1].Shape.Vertices[0].Position())
	// X spin tilts the raised quad into the Z axis
	assertVector(t, math32.Vec3(-0.5, 0.5, -0.5), objs[2].Shape.Vertices[0].Position())

	l.Transform(0)
	assertVector(t, math32.Vec3(0, 0, -1.5), objs[1].Shape.Centroid())
}

func openWindow(t *testing.T, p *offscreen.Platform) *system.Window {
	t.Helper()
	w, err := system.Open(&system.WindowConfig{Title: "test", Mode: system.Normal(400, 300), Backend: system.OpenGL(4, 6)}, p)
	require.NoError(t, err)
	return w
}

func TestFrame(t *testing.T) {
	p := offscreen.New()
	w := openWindow(t, p)
	sf := p.Windows[0].Surface
	objs := DemoObjects("img")
	l := NewLoop(objs...)
	prog := &offscreen.Program{}
	l.Program = prog

	l.Frame(w.Surface, 10*time.Millisecond)
	require.Len(t, sf.Frames, 1)
	fr := sf.Frames[0]
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, fr.Clear)
	require.Len(t, fr.Draws, 3)
	assert.Len(t, sf.Uploads, 3)
	for i, dc := range fr.Draws {
		assert.Equal(t, image.Pt(400, 300), dc.Size)
		assert.Same(t, prog, dc.Program)
		assert.Equal(t, objs[i].Uniforms.ColorOverride, dc.Uniforms.ColorOverride)
		assert.Equal(t, objs[i].Shape.RenderVertices(), dc.Vertices)
	}
	assert.Equal(t, [3]float32{-2, 0, 0}, fr.Draws[2].Uniforms.ColorOverride)

	own := &offscreen.Program{}
	objs[1].Program = own
	l.Frame(w.Surface, 10*time.Millisecond)
	require.Len(t, sf.Frames, 2)
	assert.Same(t, own, sf.Frames[1].Draws[1].Program)
	assert.Same(t, prog, sf.Frames[1].Draws[2].Program)
	assert.NotEqual(t, sf.Uploads[0], sf.Uploads[3], "vertices are uploaded fresh each frame")
}

func TestFrameFailures(t *testing.T) {
	p := offscreen.New()
	w := openWindow(t, p)
	sf := p.Windows[0].Surface
	objs := DemoObjects("img")
	l := NewLoop(objs...)
	l.AngularVelocity = 1e-3

	p.Fail.Draw = errors.New("device lost")
	l.Frame(w.Surface, time.Millisecond)
	require.Len(t, sf.Frames, 1)
	assert.Empty(t, sf.Frames[0].Draws)

	p.Fail.Draw = nil
	p.Fail.Upload = errors.New("out of memory")
	l.Frame(w.Surface, time.Millisecond)
	require.Len(t, sf.Frames, 2)
	assert.Empty(t, sf.Frames[1].Draws)

	p.Fail.Upload = nil
	p.Fail.BeginFrame = errors.New("surface outdated")
	before := objs[1].Shape.Centroid()
	l.Frame(w.Surface, time.Millisecond)
	assert.Len(t, sf.Frames, 2)
	assert.Nil(t, sf.Frame)
	assert.False(t, before.IsEqualTol(objs[1].Shape.Centroid(), tol), "the transform still runs")

	p.Fail.BeginFrame = nil
	l.Frame(w.Surface, time.Millisecond)
	require.Len(t, sf.Frames, 3)
	assert.Len(t, sf.Frames[2].Draws, 3)
}

// fakeClock advances by step on every call.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (fc *fakeClock) Now() time.Time {
	fc.now = fc.now.Add(fc.step)
	return fc.now
}

func TestRun(t *testing.T) {
	p := offscreen.New()
	w := openWindow(t, p)
	sf := p.Windows[0].Surface
	objs := DemoObjects("img")
	l := NewLoop(objs...)
	clock := &fakeClock{now: time.Unix(0, 0), step: time.Second}
	l.Now = clock.Now

	p.Post(
		system.Event{Type: system.Redraw},
		system.Event{Type: system.Resize, Size: image.Pt(640, 480)},
		system.Event{Type: system.Redraw},
		system.Event{Type: system.Resize, Size: image.Pt(0, 0)},
		system.Event{Type: system.Redraw},
		system.Event{Type: system.Resize, Size: image.Pt(800, 600)},
		system.Event{Type: system.Redraw},
		system.Event{Type: system.Close},
		system.Event{Type: system.Redraw},
	)
	require.NoError(t, l.Run(w, p, NewTimer(time.Unix(0, 0))))

	require.Len(t, sf.Frames, 3)
	assert.Equal(t, image.Pt(400, 300), sf.Frames[0].Draws[0].Size)
	assert.Equal(t, image.Pt(640, 480), sf.Frames[1].Draws[0].Size)
	assert.Equal(t, image.Pt(800, 600), sf.Frames[2].Draws[0].Size)
	assert.Equal(t, []image.Point{{640, 480}, {800, 600}}, sf.Resizes)
	assert.Equal(t, system.Redraw, p.NextEvent().Type, "close ends the loop at once")

	// each drawn frame spun one second's worth about Y
	c := objs[1].Shape.Centroid()
	angle := 3 * l.Angle(time.Second)
	assertVector(t, math32.Vec3(1.5*math32.Cos(angle), 0, -1.5*math32.Sin(angle)), c)
}

func TestRunResizeFailure(t *testing.T) {
	p := offscreen.New()
	w := openWindow(t, p)
	l := NewLoop(DemoObjects("img")...)
	p.Fail.Resize = errors.New("swapchain")
	p.Post(system.Event{Type: system.Resize, Size: image.Pt(10, 10)}, system.Event{Type: system.Redraw})
	err := l.Run(w, p, NewTimer(time.Now()))
	assert.ErrorIs(t, err, errors.ErrEnvironment)
	assert.Empty(t, p.Windows[0].Surface.Frames)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	savePNG(t, img, filepath.Join(dir, LogoTexture))
	savePNG(t, image.NewRGBA(image.Rect(0, 0, 8, 8)), filepath.Join(dir, EggTexture))
	cache := filepath.Join(dir, "shaderCache")
	_, err := shaders.Build(writeShaders(t, dir), cache, stubCompiler{}, nil)
	require.NoError(t, err)

	p := offscreen.New()
	w := openWindow(t, p)
	objs := DemoObjects(dir)
	objs[2].Shape.VertexShader = DemoVertex
	objs[2].Shape.FragmentShader = DemoFragment
	l := NewLoop(objs...)
	require.NoError(t, l.Load(w.Surface, cache))

	tx := objs[0].Uniforms.Texture
	require.NotNil(t, tx)
	assert.Equal(t, image.Pt(4, 2), tx.Size())
	assert.Same(t, tx, objs[1].Uniforms.Texture, "textures are shared")
	assert.Equal(t, image.Pt(8, 8), objs[2].Uniforms.Texture.Size())
	assert.Nil(t, objs[0].Program)
	prog := objs[2].Program.(*offscreen.Program)
	require.Len(t, prog.Stages, 2)
	assert.Equal(t, shaders.VertexShader, prog.Stages[0].Kind)

	l.Release()
	assert.True(t, tx.(*offscreen.Texture).Released)
	assert.True(t, prog.Released)
}

func TestLoadFailures(t *testing.T) {
	p := offscreen.New()
	w := openWindow(t, p)
	l := NewLoop(DemoObjects(t.TempDir())...)
	assert.ErrorIs(t, l.Load(w.Surface, t.TempDir()), errors.ErrConfiguration)

	_, err := LoadProgram(w.Surface, t.TempDir(), DemoVertex, DemoFragment)
	assert.ErrorIs(t, err, errors.ErrConfiguration)

	_, err = LoadTexture(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, errors.ErrConfiguration)
}

func savePNG(t *testing.T, img image.Image, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

type stubCompiler struct{}

func (stubCompiler) Compile(src *shaders.Source, opts *shaders.Options) ([]uint32, error) {
	return []uint32{shaders.MagicNumber, uint32(src.Kind)}, nil
}

func writeShaders(t *testing.T, dir string) string {
	t.Helper()
	src := filepath.Join(dir, "shaders")
	require.NoError(t, os.MkdirAll(src, 0755))
	for _, name := range []string{DemoVertex, DemoFragment} {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte("void main() {}"), 0666))
	}
	return src
}
