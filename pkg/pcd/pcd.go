// Package pcd reads and writes point clouds in the ASCII PCD v0.7
// format, the format the bundled course samples use.
package pcd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Color is a uniform color applied to every point of a cloud.
type Color struct {
	R, G, B uint8
}

// Cloud is an in-memory point cloud. Color is nil when the cloud
// carries no color channel.
type Cloud struct {
	Points []r3.Vec
	Color  *Color
}

// Len returns the number of points.
func (c *Cloud) Len() int {
	return len(c.Points)
}

// Read parses an ASCII PCD v0.7 document. The x, y and z fields are
// required, an rgb field is restored as the cloud color when every
// point shares one value, any other field is ignored. Binary encodings
// are rejected.
func Read(r io.Reader) (*Cloud, error) {
	scanner := bufio.NewScanner(r)

	var fields []string
	declared := -1
	width := -1
	height := 1
	data := ""

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := strings.Fields(line)
		var err error
		switch strings.ToUpper(tokens[0]) {
		case "FIELDS":
			fields = tokens[1:]
		case "WIDTH":
			width, err = headerInt(tokens)
		case "HEIGHT":
			height, err = headerInt(tokens)
		case "POINTS":
			declared, err = headerInt(tokens)
		case "DATA":
			if len(tokens) < 2 {
				return nil, fmt.Errorf("malformed DATA header %q", line)
			}
			data = strings.ToLower(tokens[1])
		}
		if err != nil {
			return nil, err
		}
		if data != "" {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if data == "" {
		return nil, fmt.Errorf("missing DATA header")
	}
	if data != "ascii" {
		return nil, fmt.Errorf("binary PCD not supported (DATA %s)", data)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("missing FIELDS header")
	}

	xi, yi, zi, rgbi := -1, -1, -1, -1
	for i, f := range fields {
		switch strings.ToLower(f) {
		case "x":
			xi = i
		case "y":
			yi = i
		case "z":
			zi = i
		case "rgb":
			rgbi = i
		}
	}
	if xi < 0 || yi < 0 || zi < 0 {
		return nil, fmt.Errorf("FIELDS must include x, y and z, got %v", fields)
	}
	if declared < 0 && width >= 0 {
		declared = width * height
	}

	cloud := &Cloud{}
	var packed uint32
	haveColor := false
	uniform := true

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Fields(line)
		if len(cols) < len(fields) {
			return nil, fmt.Errorf("point %d has %d columns, want %d", cloud.Len(), len(cols), len(fields))
		}

		x, err := parseCoord(cols[xi], cloud.Len())
		if err != nil {
			return nil, err
		}
		y, err := parseCoord(cols[yi], cloud.Len())
		if err != nil {
			return nil, err
		}
		z, err := parseCoord(cols[zi], cloud.Len())
		if err != nil {
			return nil, err
		}
		cloud.Points = append(cloud.Points, r3.Vec{X: x, Y: y, Z: z})

		if rgbi >= 0 {
			if v, err := strconv.ParseUint(cols[rgbi], 10, 32); err == nil {
				switch {
				case !haveColor:
					packed = uint32(v)
					haveColor = true
				case uint32(v) != packed:
					uniform = false
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read point data: %w", err)
	}

	if declared >= 0 && cloud.Len() != declared {
		return nil, fmt.Errorf("header declares %d points, found %d", declared, cloud.Len())
	}
	if haveColor && uniform {
		cloud.Color = &Color{R: uint8(packed >> 16), G: uint8(packed >> 8), B: uint8(packed)}
	}
	return cloud, nil
}

// ReadFile reads an ASCII PCD file from disk.
func ReadFile(path string) (*Cloud, error) {
	f, err := os.Open(path) //nolint:gosec // intentional: reading course data files
	if err != nil {
		return nil, fmt.Errorf("failed to open point cloud: %w", err)
	}
	defer func() { _ = f.Close() }()

	cloud, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cloud, nil
}

// Write encodes the cloud as an ASCII PCD v0.7 document. A colored
// cloud gains an rgb column holding the packed color.
func Write(w io.Writer, cloud *Cloud) error {
	bw := bufio.NewWriter(w)

	fields, sizes, types, counts := "x y z", "4 4 4", "F F F", "1 1 1"
	if cloud.Color != nil {
		fields, sizes, types, counts = "x y z rgb", "4 4 4 4", "F F F U", "1 1 1 1"
	}

	fmt.Fprintln(bw, "# .PCD v0.7 - Point Cloud Data file format")
	fmt.Fprintln(bw, "VERSION 0.7")
	fmt.Fprintf(bw, "FIELDS %s\n", fields)
	fmt.Fprintf(bw, "SIZE %s\n", sizes)
	fmt.Fprintf(bw, "TYPE %s\n", types)
	fmt.Fprintf(bw, "COUNT %s\n", counts)
	fmt.Fprintf(bw, "WIDTH %d\n", cloud.Len())
	fmt.Fprintln(bw, "HEIGHT 1")
	fmt.Fprintln(bw, "VIEWPOINT 0 0 0 1 0 0 0")
	fmt.Fprintf(bw, "POINTS %d\n", cloud.Len())
	fmt.Fprintln(bw, "DATA ascii")

	var packed uint32
	if cloud.Color != nil {
		packed = uint32(cloud.Color.R)<<16 | uint32(cloud.Color.G)<<8 | uint32(cloud.Color.B)
	}
	for _, p := range cloud.Points {
		bw.WriteString(formatCoord(p.X))
		bw.WriteByte(' ')
		bw.WriteString(formatCoord(p.Y))
		bw.WriteByte(' ')
		bw.WriteString(formatCoord(p.Z))
		if cloud.Color != nil {
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatUint(uint64(packed), 10))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes the cloud to disk as ASCII PCD.
func WriteFile(path string, cloud *Cloud) error {
	f, err := os.Create(path) //nolint:gosec // intentional: writing next to course data files
	if err != nil {
		return fmt.Errorf("failed to create point cloud file: %w", err)
	}
	if err := Write(f, cloud); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func headerInt(tokens []string) (int, error) {
	if len(tokens) < 2 {
		return 0, fmt.Errorf("malformed %s header", tokens[0])
	}
	n, err := strconv.Atoi(tokens[1])
	if err != nil {
		return 0, fmt.Errorf("malformed %s header: %w", tokens[0], err)
	}
	return n, nil
}

func parseCoord(col string, row int) (float64, error) {
	v, err := strconv.ParseFloat(col, 64)
	if err != nil {
		return 0, fmt.Errorf("point %d has invalid coordinate %q", row, col)
	}
	return v, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
