package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteloc/internal/document"
	"quoteloc/internal/locate"
	"quoteloc/internal/logging"
	"quoteloc/internal/testutil"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.tsx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testContext(t *testing.T) context.Context {
	return logging.WithLogger(context.Background(), testutil.NewTestLogger(t))
}

func TestScan(t *testing.T) {
	path := writeFile(t, "import x from 'y'\nconst s = \"it's\"\n")

	res, err := Scan(testContext(t), path, Target, locate.Runes)
	require.NoError(t, err)

	assert.Equal(t, path, res.Path)
	assert.Equal(t, Target, res.Target)
	assert.Equal(t, 3, res.Total())
	assert.Equal(t, "1:15", res.Occurrences[0].String())
	assert.Equal(t, "1:17", res.Occurrences[1].String())
	assert.Equal(t, "2:14", res.Occurrences[2].String())
	assert.Equal(t, "const s = \"it's\"", res.LineText(res.Occurrences[2]))
}

func TestScan_EmptyFile(t *testing.T) {
	res, err := Scan(testContext(t), writeFile(t, ""), Target, locate.Runes)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total())
	assert.NotNil(t, res.Occurrences)
}

func TestScan_Unit(t *testing.T) {
	path := writeFile(t, "é'")

	res, err := Scan(testContext(t), path, Target, locate.Bytes)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total())
	assert.Equal(t, 3, res.Occurrences[0].Column)
	assert.Equal(t, locate.Bytes, res.Unit)
}

func TestScan_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.txt") },
			wantErr: document.ErrNotFound,
		},
		{
			name:    "invalid utf-8",
			path:    func(t *testing.T) string { return writeFile(t, "bad \xff byte") },
			wantErr: document.ErrDecode,
		},
		{
			name:    "empty path",
			path:    func(*testing.T) string { return "" },
			wantMsg: "no input path",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Scan(testContext(t), tt.path(t), Target, locate.Runes)
			require.Error(t, err)
			assert.Nil(t, res)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
