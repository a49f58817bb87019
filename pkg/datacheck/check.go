package datacheck

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"image/png"
	"io"
	"os"

	"github.com/zeebo/blake3"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/pcd"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/syscheck"
)

// Kind selects the format validation applied after the generic file
// checks.
type Kind string

const (
	KindPNG Kind = "png"
	KindPCD Kind = "pcd"
)

// Check verifies a bundled sample data file: it exists, is non-empty,
// and decodes in its declared format. The digests give students a
// fingerprint to compare against a healthy checkout.
type Check struct {
	Path        string // absolute path to the file
	Rel         string // display name, e.g. "data/sample_image.png"
	Kind        Kind
	Remediation string
	FS          FileSystem // injected for testing
}

// Run executes the data file check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name:        "data: " + c.Rel,
		Remediation: c.Remediation,
	}

	info, err := c.FS.Stat(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return result.Failf("not found at %s", c.Path)
		}
		if os.IsPermission(err) {
			return result.Failf("permission denied")
		}
		return result.Failf("failed to stat: %v", err)
	}
	if info.IsDir() {
		return result.Failf("is a directory, not a file")
	}
	if info.Size() == 0 {
		return result.Failf("file is empty")
	}
	result.AddDetailf("size: %s", syscheck.FormatSize(uint64(info.Size())))

	f, err := c.FS.Open(c.Path)
	if err != nil {
		return result.Failf("failed to open: %v", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return result.Failf("failed to read: %v", err)
	}

	sha := sha256.Sum256(data)
	b3 := blake3.Sum256(data)
	result.AddDetailf("sha256: %s", hex.EncodeToString(sha[:]))
	result.AddDetailf("blake3: %s", hex.EncodeToString(b3[:]))

	switch c.Kind {
	case KindPNG:
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return result.Failf("not a valid PNG: %v", err)
		}
		result.AddDetailf("png: %dx%d", cfg.Width, cfg.Height)
	case KindPCD:
		cloud, err := pcd.Read(bytes.NewReader(data))
		if err != nil {
			return result.Failf("not a valid PCD: %v", err)
		}
		if cloud.Len() == 0 {
			return result.Failf("point cloud has 0 points")
		}
		result.AddDetailf("points: %d", cloud.Len())
	}

	result.Status = check.StatusOK
	return result
}
