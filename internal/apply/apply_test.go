// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apply

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/locgraft/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// numberedDump returns n data lines whose values are produced by value(i).
func numberedDump(n int, value func(i int) string) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("  %d   string data = %s\n", i+1, value(i+1))
	}
	return lines
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantOK     bool
		wantReason string
	}{
		{"raw japanese", "  1   string data = \"「テスト」\"\n", true, ""},
		{"structure line", "  0 Array Array\n", false, "no-data-marker"},
		{"empty value", "  1   string data = \"\"\n", false, "already-doubled"},
		{"already converted", "  1   string data = \"\"テスト\"\"\n", false, "already-doubled"},
		{"script node", "  1   string data = \"Script Node\"\n", false, "script-node"},
		{"markup only is still eligible", "  1   string data = ::shake::\n", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, ok := Eligible(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestLines(t *testing.T) {
	source := []string{
		"  0 Array Array\n",
		"  1   string data = \"「一」\"\n",
		"  2   string data = \"\"\n",
		"  3   string data = \"Script Node\"\n",
		"  4   string data = ::wait:: \"「四」\"\n",
	}
	target := []string{
		"  0 Array Array\n",
		"  1   string data = \"One\"\n",
		"  2   string data = \"\"\n",
		"  3   string data = \"Script Node\"\n",
		"  4   string data = ::wait:: \"Four\"\n",
	}

	sum, err := Lines(source, target, types.LineRange{Start: 1, End: 5})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"  0 Array Array\n",
		"  1   string data = \"\"一\"\"\n",
		"  2   string data = \"\"\n",
		"  3   string data = \"Script Node\"\n",
		"  4   string data = ::wait:: \"\"四\"\"\n",
	}, target)
	assert.Equal(t, 5, sum.Considered)
	assert.Equal(t, 2, sum.Converted)
	assert.Equal(t, 3, sum.Skipped)
	assert.Equal(t, map[string]int{"no-data-marker": 1, "already-doubled": 1, "script-node": 1}, sum.Reasons)
	require.Len(t, sum.Changes, 2)
	assert.Equal(t, 2, sum.Changes[0].Line)
	assert.Equal(t, "  1   string data = \"One\"\n", sum.Changes[0].Before)
}

func TestLinesRangeClamp(t *testing.T) {
	source := numberedDump(50, func(i int) string { return fmt.Sprintf("\"「%d」\"", i) })
	target := numberedDump(50, func(i int) string { return "\"placeholder\"" })

	sum, err := Lines(source, target, types.LineRange{Start: 5, End: 1000})
	require.NoError(t, err)
	assert.Equal(t, 46, sum.Considered)
	assert.Equal(t, 46, sum.Converted)

	for i, l := range target {
		if i < 4 {
			assert.Contains(t, l, "placeholder", "line %d outside range changed", i+1)
			continue
		}
		assert.Equal(t, fmt.Sprintf("  %d   string data = \"\"%d\"\"\n", i+1, i+1), l)
	}
}

func TestLinesEmptyRange(t *testing.T) {
	source := numberedDump(3, func(int) string { return "\"「x」\"" })
	target := numberedDump(3, func(int) string { return "\"y\"" })
	orig := append([]string(nil), target...)

	for _, r := range []types.LineRange{{Start: 3, End: 2}, {Start: 10, End: 20}} {
		sum, err := Lines(source, target, r)
		require.NoError(t, err, "range %s", r)
		assert.Zero(t, sum.Considered)
		assert.Equal(t, orig, target)
	}
}

func TestLinesInvalidRange(t *testing.T) {
	_, err := Lines([]string{"a\n"}, []string{"a\n"}, types.LineRange{Start: 0, End: 1})
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestLinesTargetTooShort(t *testing.T) {
	source := numberedDump(3, func(int) string { return "\"「x」\"" })
	target := numberedDump(1, func(int) string { return "\"y\"" })

	_, err := Lines(source, target, types.LineRange{Start: 1, End: 3})
	require.ErrorIs(t, err, ErrTargetTooShort)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"trailing newline", "a\nb\n", []string{"a\n", "b\n"}},
		{"no trailing newline", "a\nb", []string{"a\n", "b"}},
		{"crlf kept", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
		{"blank lines kept", "\n\n", []string{"\n", "\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.in))
		})
	}
}

func TestFilesEndToEnd(t *testing.T) {
	dir := t.TempDir()

	src := make([]string, 14)
	dst := make([]string, 14)
	for i := range src {
		src[i] = fmt.Sprintf("  %d Base base\n", i+1)
		dst[i] = src[i]
	}
	src[11] = "  12   string data = \"「テスト」\"\n"
	dst[11] = "  12   string data = \"Test\"\n"
	// Last line without terminator must survive the rewrite.
	dst[13] = "  14 End end"

	srcPath := writeFile(t, dir, "backup.txt", strings.Join(src, ""))
	dstPath := writeFile(t, dir, "target.txt", strings.Join(dst, ""))

	var out bytes.Buffer
	cfg := types.ApplyConfig{
		SourcePath: srcPath,
		TargetPath: dstPath,
		Range:      types.LineRange{Start: 12, End: 12},
	}
	sum, err := Files(context.Background(), cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Converted)
	assert.Equal(t, "Applied translations from lines 12 to 12\n", out.String())

	got, err := ReadLines(dstPath)
	require.NoError(t, err)
	require.Len(t, got, 14)
	assert.Equal(t, "  12   string data = \"\"テスト\"\"\n", got[11])
	assert.Equal(t, dst[10], got[10])
	assert.Equal(t, "  14 End end", got[13])
}

func TestFilesDryRun(t *testing.T) {
	dir := t.TempDir()
	srcPath := writeFile(t, dir, "backup.txt", "  1   string data = \"「はい」\"\n")
	original := "  1   string data = \"Yes\"\n"
	dstPath := writeFile(t, dir, "target.txt", original)

	var out bytes.Buffer
	cfg := types.ApplyConfig{
		SourcePath: srcPath,
		TargetPath: dstPath,
		Range:      types.LineRange{Start: 1, End: 1},
		DryRun:     true,
	}
	sum, err := Files(context.Background(), cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Converted)
	assert.Contains(t, out.String(), "line 1:")
	assert.Contains(t, out.String(), "+   1   string data = \"\"はい\"\"")
	assert.Contains(t, out.String(), "Dry run: 1 line(s) would change")

	data, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestFilesMissingInputs(t *testing.T) {
	dir := t.TempDir()
	existing := writeFile(t, dir, "present.txt", "  1 Base base\n")
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name    string
		source  string
		target  string
		wantMsg string
	}{
		{"missing backup", missing, existing, "reading backup file"},
		{"missing target", existing, missing, "reading target file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := types.ApplyConfig{
				SourcePath: tt.source,
				TargetPath: tt.target,
				Range:      types.LineRange{Start: 1, End: 1},
			}
			_, err := Files(context.Background(), cfg, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestPrintStatus(t *testing.T) {
	source := []string{
		"  0 Array Array\n",
		"  1   string data = \"「一」\"\n",
	}
	target := append([]string(nil), source...)
	sum, err := Lines(source, target, types.LineRange{Start: 1, End: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintStatus(&buf, source, sum)
	assert.Contains(t, buf.String(), "line 1: skipped (no-data-marker)")
	assert.Contains(t, buf.String(), "line 2: converted")
	assert.Contains(t, buf.String(), "Summary: 1 converted, 1 skipped (considered: 2)")
}
