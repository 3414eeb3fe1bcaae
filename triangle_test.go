package shapes

import (
	"bytes"
	"math"
	"reflect"
	"testing"

	"github.com/gogpu/shapes/canvas"
	"github.com/gogpu/shapes/recording"
)

// transforms returns the translate, rotate and scale commands of rec in
// order.
func transforms(rec *recording.Recorder) (tr []recording.TranslateCommand, rot []recording.RotateCommand, sc []recording.ScaleCommand) {
	for _, c := range rec.Commands() {
		switch c := c.(type) {
		case recording.TranslateCommand:
			tr = append(tr, c)
		case recording.RotateCommand:
			rot = append(rot, c)
		case recording.ScaleCommand:
			sc = append(sc, c)
		}
	}
	return tr, rot, sc
}

func TestTriangleVertices(t *testing.T) {
	got := TriangleVertices(0, 0, 0)
	want := [3]Point{{0, -1}, {-0.6, 0}, {0.6, 0}}
	if got != want {
		t.Errorf("TriangleVertices(0, 0, 0) = %v, want %v", got, want)
	}

	got = TriangleVertices(10, 20, 40)
	want = [3]Point{{-0.1, -1.3}, {-0.9, 0.1}, {1, 0.2}}
	for i := range got {
		if math.Abs(got[i].X-want[i].X) > 1e-12 || math.Abs(got[i].Y-want[i].Y) > 1e-12 {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCreateTriangleCommands(t *testing.T) {
	deg := 90.0
	rec := recording.NewRecorder(200, 200)
	tri, err := CreateTriangle(rec, TriangleOptions{
		X:      Float(100),
		Y:      Float(120),
		Rotate: Float(deg),
		Color:  "red",
	})
	if err != nil {
		t.Fatalf("CreateTriangle: %v", err)
	}

	want := []recording.Command{
		recording.SaveCommand{},
		recording.TranslateCommand{X: 100, Y: 120},
		recording.RotateCommand{Angle: deg * math.Pi / 180},
		recording.ScaleCommand{X: 50, Y: 50},
		recording.BeginPathCommand{},
		recording.MoveToCommand{X: 0, Y: -1},
		recording.LineToCommand{X: -0.6, Y: 0},
		recording.LineToCommand{X: 0.6, Y: 0},
		recording.ClosePathCommand{},
		recording.SetFillStyleCommand{Color: "red"},
		recording.FillCommand{},
		recording.RestoreCommand{},
	}
	if got := rec.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("commands =\n%v\nwant\n%v", got, want)
	}

	if tri.Size != 50 || tri.DrawType != DrawFill || tri.BorderColor != DefaultBorderColor {
		t.Errorf("handle = %+v", tri)
	}
	if tri.Base() != tri.TriangleState {
		t.Errorf("Base() = %+v, want the created state", tri.Base())
	}
}

func TestTriangleExplicitZero(t *testing.T) {
	rec := recording.NewRecorder(10, 10)
	tri, err := CreateTriangle(rec, TriangleOptions{Size: Float(0)})
	if err != nil {
		t.Fatal(err)
	}
	if tri.Size != 0 {
		t.Errorf("Size = %v, want 0", tri.Size)
	}
	_, _, sc := transforms(rec)
	if len(sc) != 1 || sc[0] != (recording.ScaleCommand{}) {
		t.Errorf("scale = %v, want one zero scale", sc)
	}

	tri, err = CreateTriangle(recording.NewRecorder(10, 10), TriangleOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if tri.Size != 50 {
		t.Errorf("default Size = %v, want 50", tri.Size)
	}
}

func TestTriangleRedrawUsesOriginal(t *testing.T) {
	rec := recording.NewRecorder(200, 200)
	h1, err := CreateTriangle(rec, TriangleOptions{X: Float(10), Color: "red"})
	if err != nil {
		t.Fatal(err)
	}
	h2, err := h1.Draw(TriangleDrawOptions{TriangleOptions: TriangleOptions{Size: Float(80), Color: "blue"}})
	if err != nil {
		t.Fatal(err)
	}
	h3, err := h2.Draw(TriangleDrawOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if h2.Size != 80 || h2.Color != "blue" {
		t.Errorf("h2 = %+v", h2.TriangleState)
	}
	if h3.Size != 50 || h3.Color != "red" || h3.X != 10 {
		t.Errorf("h3 = %+v, want the original parameters", h3.TriangleState)
	}
	if h3.Base() != h1.Base() {
		t.Errorf("base changed across redraws: %+v != %+v", h3.Base(), h1.Base())
	}

	_, _, sc := transforms(rec)
	want := []recording.ScaleCommand{{X: 50, Y: 50}, {X: 80, Y: 80}, {X: 50, Y: 50}}
	if !reflect.DeepEqual(sc, want) {
		t.Errorf("scales = %v, want %v", sc, want)
	}
}

func TestTriangleRedrawIsRepeatable(t *testing.T) {
	opts := TriangleOptions{X: Float(100), Y: Float(90), Size: Float(60), Rotate: Float(30), Color: "teal"}

	// render returns the pixels of the final draw only
	render := func(draws ...TriangleDrawOptions) []byte {
		t.Helper()
		dc := canvas.NewContext(200, 200)
		h, err := CreateTriangle(dc, opts)
		if err != nil {
			t.Fatal(err)
		}
		for _, o := range draws {
			if err := dc.Clear("transparent"); err != nil {
				t.Fatal(err)
			}
			if h, err = h.Draw(o); err != nil {
				t.Fatal(err)
			}
		}
		return bytes.Clone(dc.Image().Pix)
	}

	created := render()
	once := render(TriangleDrawOptions{})
	twice := render(TriangleDrawOptions{}, TriangleDrawOptions{})
	afterOverride := render(
		TriangleDrawOptions{TriangleOptions: TriangleOptions{Size: Float(10), Color: "red"}, DrawType: DrawOutline},
		TriangleDrawOptions{},
	)
	if !bytes.Equal(created, once) {
		t.Error("Draw with no overrides differs from the created triangle")
	}
	if !bytes.Equal(once, twice) {
		t.Error("repeated Draw is not pixel-identical")
	}
	if !bytes.Equal(once, afterOverride) {
		t.Error("Draw after an override differs from a plain Draw")
	}

	rec := recording.NewRecorder(200, 200)
	h, err := CreateTriangle(rec, opts)
	if err != nil {
		t.Fatal(err)
	}
	n := len(rec.Commands())
	for i := 0; i < 2; i++ {
		if h, err = h.Draw(TriangleDrawOptions{}); err != nil {
			t.Fatal(err)
		}
	}
	cmds := rec.Commands()
	if len(cmds) != 3*n {
		t.Fatalf("recorded %d commands, want %d", len(cmds), 3*n)
	}
	if !reflect.DeepEqual(cmds[:n], cmds[n:2*n]) || !reflect.DeepEqual(cmds[n:2*n], cmds[2*n:]) {
		t.Errorf("command streams differ:\n%v\n%v\n%v", cmds[:n], cmds[n:2*n], cmds[2*n:])
	}
}

func TestTriangleDrawTypes(t *testing.T) {
	rec := recording.NewRecorder(10, 10)
	tri, err := CreateTriangle(rec, TriangleOptions{BorderColor: "navy"})
	if err != nil {
		t.Fatal(err)
	}
	rec.Reset()

	out, err := tri.Draw(TriangleDrawOptions{DrawType: DrawOutline})
	if err != nil {
		t.Fatal(err)
	}
	if out.DrawType != DrawOutline {
		t.Errorf("DrawType = %v", out.DrawType)
	}

	cmds := rec.Commands()
	tail := cmds[len(cmds)-6:]
	want := []recording.Command{
		recording.SetFillStyleCommand{Color: "black"},
		recording.FillCommand{},
		recording.SetStrokeStyleCommand{Color: "navy"},
		recording.SetLineWidthCommand{Width: StrokeWidth},
		recording.StrokeCommand{},
		recording.RestoreCommand{},
	}
	if !reflect.DeepEqual(tail, want) {
		t.Errorf("tail = %v, want %v", tail, want)
	}
}

func TestTriangleRestoresOnError(t *testing.T) {
	rec := recording.NewRecorder(10, 10)
	_, err := CreateTriangle(rec, TriangleOptions{Color: "blurple"})
	if err == nil {
		t.Fatal("want color error")
	}

	saves, restores := 0, 0
	for _, c := range rec.Commands() {
		switch c.(type) {
		case recording.SaveCommand:
			saves++
		case recording.RestoreCommand:
			restores++
		}
	}
	if saves != 1 || restores != 1 {
		t.Errorf("saves = %d, restores = %d; want balanced", saves, restores)
	}
}

func TestEquiTriangleVertices(t *testing.T) {
	got := EquiTriangleVertices(100, 100, 40)
	want := [3]Point{{80, 120}, {100, 80}, {120, 120}}
	if got != want {
		t.Errorf("EquiTriangleVertices = %v, want %v", got, want)
	}
}

func TestEquiTriangleRedraw(t *testing.T) {
	rec := recording.NewRecorder(200, 200)
	h1, err := CreateEquiTriangle(rec, EquiTriangleOptions{X: Float(100), Y: Float(100), Height: Float(40)})
	if err != nil {
		t.Fatal(err)
	}
	h2, err := h1.Draw(EquiTriangleDrawOptions{EquiTriangleOptions: EquiTriangleOptions{Height: Float(0)}, DrawType: DrawStroke})
	if err != nil {
		t.Fatal(err)
	}
	if h2.Height != 0 || h2.X != 100 {
		t.Errorf("h2 = %+v", h2.EquiTriangleState)
	}
	h3, err := h2.Draw(EquiTriangleDrawOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if h3.Height != 40 || h3.DrawType != DrawFill {
		t.Errorf("h3 = %+v", h3)
	}

	cmds := rec.Commands()
	first := cmds[:7]
	want := []recording.Command{
		recording.BeginPathCommand{},
		recording.MoveToCommand{X: 80, Y: 120},
		recording.LineToCommand{X: 100, Y: 80},
		recording.LineToCommand{X: 120, Y: 120},
		recording.ClosePathCommand{},
		recording.SetFillStyleCommand{Color: "black"},
		recording.FillCommand{},
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("first render = %v, want %v", first, want)
	}
}
