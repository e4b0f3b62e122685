package cli

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/mondrian/pkg/errors"
	"github.com/matzehuels/mondrian/pkg/pipeline"
)

func TestGenerateWritesImage(t *testing.T) {
	c, out := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "art.png")

	if err := execute(t, c, "generate", "--seed", "5", "-W", "64", "-H", "48", "-o", path); err != nil {
		t.Fatalf("generate error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("image size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}
	if !strings.Contains(out.String(), "seed 5") {
		t.Errorf("output should report the seed: %q", out.String())
	}
}

func TestGenerateMultipleFormats(t *testing.T) {
	c, _ := newTestCLI(t)
	base := filepath.Join(t.TempDir(), "nested", "piece")

	err := execute(t, c, "generate", "-m", "complex", "--seed", "9", "-W", "40", "-H", "40",
		"-f", "png,json,jpg", "--tree=dot", "-o", base)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	for _, name := range []string{"piece.png", "piece.json", "piece.jpg", "piece.tree.dot"} {
		if _, err := os.Stat(filepath.Join(filepath.Dir(base), name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	manifest, _ := os.ReadFile(base + ".json")
	if !strings.Contains(string(manifest), `"mode": "complex"`) {
		t.Errorf("manifest = %s", manifest)
	}
}

func TestGenerateServedFromCache(t *testing.T) {
	c, out := newTestCLI(t)
	dir := t.TempDir()
	args := []string{"generate", "--seed", "11", "-W", "32", "-H", "32", "-o", filepath.Join(dir, "a.png")}

	if err := execute(t, c, args...); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(filepath.Join(dir, "a.png"))
	if strings.Contains(out.String(), "cached") {
		t.Error("first run should not be cached")
	}

	out.Reset()
	args[len(args)-1] = filepath.Join(dir, "b.png")
	if err := execute(t, c, args...); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(filepath.Join(dir, "b.png"))
	if !strings.Contains(out.String(), "cached") {
		t.Errorf("second run should be served from cache: %q", out.String())
	}
	if string(first) != string(second) {
		t.Error("cached image differs from the original")
	}
}

func TestGenerateUnseededSuggestsSeed(t *testing.T) {
	c, out := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "x.png")
	if err := execute(t, c, "generate", "-W", "16", "-H", "16", "--no-cache", "-o", path); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "reproduce with --seed") {
		t.Errorf("output = %q", out.String())
	}
}

func TestGenerateUsesConfig(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	c.ConfigPath = filepath.Join(dir, "config.toml")
	cfg := `[generate]
mode = "complex"
width = 24
height = 24
formats = ["bmp"]
output_dir = "` + filepath.ToSlash(dir) + `"
`
	if err := os.WriteFile(c.ConfigPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, c, "generate", "--seed", "2"); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "extension.bmp")); err != nil {
		t.Errorf("config defaults not applied: %v", err)
	}
}

func TestGenerateInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want apperrors.Code
	}{
		{"mode", []string{"-m", "cubist"}, apperrors.ErrCodeInvalidMode},
		{"format", []string{"-f", "gif"}, apperrors.ErrCodeInvalidFormat},
		{"size", []string{"-W", "3"}, apperrors.ErrCodeInvalidDimensions},
		{"palette", []string{"--palette", "#12345"}, apperrors.ErrCodeInvalidPalette},
		{"tree", []string{"--tree=pdf"}, apperrors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(t)
			err := execute(t, c, append([]string{"generate"}, tt.args...)...)
			if !apperrors.Is(err, tt.want) {
				t.Errorf("error = %v, want code %s", err, tt.want)
			}
		})
	}
}

func TestGenerateRequestPaths(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		tree    string
		output  string
		outDir  string
		want    map[string]string
	}{
		{
			name:    "default name",
			formats: []string{"png"},
			want:    map[string]string{"png": "basic.png"},
		},
		{
			name:    "default name in output dir",
			formats: []string{"png", "json"},
			outDir:  "out",
			want:    map[string]string{"png": filepath.Join("out", "basic.png"), "json": filepath.Join("out", "basic.json")},
		},
		{
			name:    "explicit single file",
			formats: []string{"jpeg"},
			output:  "photo.jpeg",
			outDir:  "ignored",
			want:    map[string]string{"jpeg": "photo.jpeg"},
		},
		{
			name:    "base path with known extension",
			formats: []string{"png", "tiff"},
			tree:    "svg",
			output:  "art/piece.png",
			want: map[string]string{
				"png":      "art/piece.png",
				"tiff":     "art/piece.tif",
				"tree.svg": "art/piece.tree.svg",
			},
		},
		{
			name:    "unknown extension kept",
			formats: []string{"png", "json"},
			output:  "v1.2",
			want:    map[string]string{"png": "v1.2.png", "json": "v1.2.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &generateRequest{
				opts:   pipeline.Options{Mode: "basic", Formats: tt.formats, Tree: tt.tree},
				output: tt.output,
				outDir: tt.outDir,
			}
			got, err := req.paths()
			if err != nil {
				t.Fatalf("paths() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("paths() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("paths()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestTrimKnownExt(t *testing.T) {
	tests := map[string]string{
		"a.png":      "a",
		"a.JPG":      "a",
		"a.tiff":     "a",
		"a.dot":      "a",
		"a.tar":      "a.tar",
		"dir.v2/out": "dir.v2/out",
	}
	for in, want := range tests {
		if got := trimKnownExt(in); got != want {
			t.Errorf("trimKnownExt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateFromManifest(t *testing.T) {
	c, _ := newTestCLI(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "orig")

	if err := execute(t, c, "generate", "-m", "complex", "--seed", "77", "-W", "48", "-H", "30", "-f", "png,json", "-o", base); err != nil {
		t.Fatal(err)
	}

	copyPath := filepath.Join(dir, "copy.png")
	if err := execute(t, c, "generate", "--no-cache", "--from", base+".json", "-o", copyPath); err != nil {
		t.Fatalf("generate --from error: %v", err)
	}

	orig, _ := os.ReadFile(base + ".png")
	repainted, _ := os.ReadFile(copyPath)
	if len(orig) == 0 || string(orig) != string(repainted) {
		t.Error("repainting from the manifest should reproduce the image")
	}
}
