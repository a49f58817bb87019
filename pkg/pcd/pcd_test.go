package pcd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const sampleDoc = `# .PCD v0.7 - Point Cloud Data file format
VERSION 0.7
FIELDS x y z
SIZE 4 4 4
TYPE F F F
COUNT 1 1 1
WIDTH 3
HEIGHT 1
VIEWPOINT 0 0 0 1 0 0 0
POINTS 3
DATA ascii
0 0 0
0.5 0 0
0 -0.25 1
`

func TestRead(t *testing.T) {
	cloud, err := Read(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cloud.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cloud.Len())
	}
	want := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 0.5, Y: 0, Z: 0},
		{X: 0, Y: -0.25, Z: 1},
	}
	for i, p := range cloud.Points {
		if p != want[i] {
			t.Errorf("Points[%d] = %v, want %v", i, p, want[i])
		}
	}
	if cloud.Color != nil {
		t.Errorf("Color = %v, want nil", cloud.Color)
	}
}

func TestRead_IgnoresExtraFields(t *testing.T) {
	doc := `VERSION 0.7
FIELDS intensity x y z
SIZE 4 4 4 4
TYPE F F F F
COUNT 1 1 1 1
WIDTH 2
HEIGHT 1
POINTS 2
DATA ascii
9.5 1 2 3
8.5 4 5 6
`
	cloud, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cloud.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cloud.Len())
	}
	if (cloud.Points[0] != r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Points[0] = %v, want {1 2 3}", cloud.Points[0])
	}
}

func TestRead_UniformColor(t *testing.T) {
	doc := `VERSION 0.7
FIELDS x y z rgb
SIZE 4 4 4 4
TYPE F F F U
COUNT 1 1 1 1
WIDTH 2
HEIGHT 1
POINTS 2
DATA ascii
0 0 0 16711680
1 1 1 16711680
`
	cloud, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cloud.Color == nil {
		t.Fatal("Color = nil, want red")
	}
	if *cloud.Color != (Color{R: 255, G: 0, B: 0}) {
		t.Errorf("Color = %v, want {255 0 0}", *cloud.Color)
	}
}

func TestRead_MixedColorDropped(t *testing.T) {
	doc := `VERSION 0.7
FIELDS x y z rgb
SIZE 4 4 4 4
TYPE F F F U
COUNT 1 1 1 1
WIDTH 2
HEIGHT 1
POINTS 2
DATA ascii
0 0 0 16711680
1 1 1 65280
`
	cloud, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cloud.Color != nil {
		t.Errorf("Color = %v, want nil for mixed colors", cloud.Color)
	}
}

func TestRead_RejectsBinary(t *testing.T) {
	doc := `VERSION 0.7
FIELDS x y z
WIDTH 1
HEIGHT 1
POINTS 1
DATA binary
`
	_, err := Read(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "binary PCD not supported") {
		t.Errorf("Read() error = %v, want binary rejection", err)
	}
}

func TestRead_MissingCoordinateFields(t *testing.T) {
	doc := `VERSION 0.7
FIELDS x y
WIDTH 1
HEIGHT 1
POINTS 1
DATA ascii
0 0
`
	_, err := Read(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "FIELDS must include") {
		t.Errorf("Read() error = %v, want missing fields error", err)
	}
}

func TestRead_MissingData(t *testing.T) {
	doc := `VERSION 0.7
FIELDS x y z
WIDTH 1
HEIGHT 1
POINTS 1
`
	_, err := Read(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "missing DATA header") {
		t.Errorf("Read() error = %v, want missing DATA error", err)
	}
}

func TestRead_CountMismatch(t *testing.T) {
	doc := `VERSION 0.7
FIELDS x y z
WIDTH 3
HEIGHT 1
POINTS 3
DATA ascii
0 0 0
1 1 1
`
	_, err := Read(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "declares 3 points, found 2") {
		t.Errorf("Read() error = %v, want count mismatch", err)
	}
}

func TestRead_BadCoordinate(t *testing.T) {
	doc := `VERSION 0.7
FIELDS x y z
WIDTH 1
HEIGHT 1
POINTS 1
DATA ascii
a b c
`
	_, err := Read(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "invalid coordinate") {
		t.Errorf("Read() error = %v, want coordinate error", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	original := &Cloud{
		Points: []r3.Vec{
			{X: 0.25, Y: -0.5, Z: 1},
			{X: 0.0625, Y: 0.125, Z: -0.75},
			{X: 2, Y: 3, Z: 4},
		},
		Color: &Color{R: 255, G: 0, B: 0},
	}

	var buf bytes.Buffer
	if err := Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	reloaded, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if reloaded.Len() != original.Len() {
		t.Fatalf("Len() = %d, want %d", reloaded.Len(), original.Len())
	}
	for i := range original.Points {
		if reloaded.Points[i] != original.Points[i] {
			t.Errorf("Points[%d] = %v, want %v", i, reloaded.Points[i], original.Points[i])
		}
	}
	if reloaded.Color == nil || *reloaded.Color != *original.Color {
		t.Errorf("Color = %v, want %v", reloaded.Color, original.Color)
	}
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cloud.pcd")
	cloud := &Cloud{Points: []r3.Vec{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}}

	if err := WriteFile(path, cloud); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	reloaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if reloaded.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reloaded.Len())
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "gone.pcd"))
	if err == nil {
		t.Fatal("ReadFile() error = nil, want error")
	}
}
