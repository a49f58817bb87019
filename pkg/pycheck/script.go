package pycheck

// Interpreter snippets passed to python3 -c. Each prints a single JSON
// object on stdout so the caller never has to scrape human-readable
// output. An import failure is part of the protocol ({"found": false}),
// any other exception escapes, exits non-zero and is reported from
// stderr.

// VersionScript reports the interpreter version and executable path.
const VersionScript = `
import json, platform, sys
print(json.dumps({"version": platform.python_version(), "executable": sys.executable}))
`

// ImportScript imports the module named by argv[1] and reports whether
// it was found plus its version when it declares one.
const ImportScript = `
import importlib, json, sys
try:
    module = importlib.import_module(sys.argv[1])
except ImportError:
    print(json.dumps({"found": False}))
else:
    print(json.dumps({"found": True, "version": getattr(module, "__version__", "")}))
`

// NumpyScript multiplies a matrix by the identity and verifies the
// product is unchanged.
const NumpyScript = `
import json
import numpy as np
a = np.arange(9).reshape(3, 3)
b = np.eye(3)
print(json.dumps({"ok": bool(np.array_equal(a @ b, a))}))
`

// ScipyScript runs an FFT over a sine sweep and verifies the spectrum
// is finite.
const ScipyScript = `
import json
import numpy as np
from scipy import fft
sample = np.sin(np.linspace(0, 8 * np.pi, 128))
spectrum = np.abs(fft.fft(sample))
print(json.dumps({"ok": bool(np.isfinite(spectrum).all())}))
`

// MatplotlibScript renders a small plot through the Agg backend into
// the file named by argv[1].
const MatplotlibScript = `
import json, os, sys
import matplotlib
matplotlib.use("Agg")
import matplotlib.pyplot as plt
target = sys.argv[1]
fig, ax = plt.subplots()
ax.plot([0, 1], [0, 1])
fig.savefig(target)
plt.close(fig)
print(json.dumps({"ok": os.path.exists(target) and os.path.getsize(target) > 0}))
`

// OpenCVScript decodes the image named by argv[1] with cv2.imread and
// reports its dimensions.
const OpenCVScript = `
import json, sys
import cv2
img = cv2.imread(sys.argv[1])
if img is None:
    print(json.dumps({"ok": False}))
else:
    print(json.dumps({"ok": True, "width": int(img.shape[1]), "height": int(img.shape[0])}))
`

// Open3DGeometryScript builds a two-point cloud and verifies its
// axis-aligned bounding box is non-empty.
const Open3DGeometryScript = `
import json
import open3d as o3d
cube = o3d.geometry.PointCloud()
cube.points = o3d.utility.Vector3dVector([[0, 0, 0], [1, 1, 1]])
bbox = cube.get_axis_aligned_bounding_box()
print(json.dumps({"ok": not bbox.is_empty()}))
`

// Open3DCloudScript reads the point cloud named by argv[1] and reports
// how many points it holds.
const Open3DCloudScript = `
import json, sys
import open3d as o3d
cloud = o3d.io.read_point_cloud(sys.argv[1])
n = len(cloud.points)
print(json.dumps({"ok": n > 0, "points": n}))
`
