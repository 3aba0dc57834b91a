package archive

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/types"
)

func readEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	out := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		out[f.Name] = string(b)
	}
	return out
}

func TestBuild_SingleEntry(t *testing.T) {
	data, err := Build(types.GeneratedFiles{Files: []types.File{{Path: "a.txt", Content: "hello"}}})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a.txt": "hello"}, readEntries(t, data))
}

func TestBuild_RoundTrip(t *testing.T) {
	in := types.GeneratedFiles{Files: []types.File{
		{Path: "package.json", Content: `{"name":"x"}`},
		{Path: "src/App.jsx", Content: "export default function App() {}\n"},
		{Path: "src/index.css", Content: ""},
		{Path: "app/page.tsx", Content: "سلام دنیا"},
	}}

	data, err := Build(in)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, len(in.Files))
	for i, f := range zr.File {
		assert.Equal(t, in.Files[i].Path, f.Name)
	}

	entries := readEntries(t, data)
	for _, f := range in.Files {
		assert.Equal(t, f.Content, entries[f.Path], f.Path)
	}
}

func TestBuild_Empty(t *testing.T) {
	data, err := Build(types.GeneratedFiles{})
	require.NoError(t, err)
	assert.Empty(t, readEntries(t, data))
}

func TestBuild_Deterministic(t *testing.T) {
	in := types.GeneratedFiles{Files: []types.File{
		{Path: "index.html", Content: "<h1>hi</h1>"},
		{Path: "styles.css", Content: "body{}"},
	}}

	first, err := Build(in)
	require.NoError(t, err)
	second, err := Build(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFilename(t *testing.T) {
	now := time.UnixMilli(1718000000123)
	assert.Equal(t, "site-1718000000123.zip", Filename(now))
}
