package main

import (
	"bytes"
	"image"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/bodgit/ppmview/ppm"
)

// run runs the app with args and returns its output, diagnostics and the
// exit code it asked for, -1 meaning none.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := -1

	exiter, errWriter := cli.OsExiter, cli.ErrWriter
	defer func() {
		cli.OsExiter, cli.ErrWriter = exiter, errWriter
	}()
	cli.OsExiter = func(c int) {
		code = c
	}
	cli.ErrWriter = stderr

	app := newApp()
	app.Writer = stdout
	app.ErrWriter = stderr

	_ = app.Run(append([]string{"ppmview"}, args...))

	return stdout.String(), stderr.String(), code
}

func writeTestImage(t *testing.T, dir string) string {
	t.Helper()
	file := filepath.Join(dir, "image.ppm")
	b := new(bytes.Buffer)
	require.NoError(t, ppm.Encode(b, image.NewRGBA(image.Rect(0, 0, 16, 9))))
	require.NoError(t, ioutil.WriteFile(file, b.Bytes(), 0644))
	return file
}

func TestInfo(t *testing.T) {
	file := writeTestImage(t, t.TempDir())

	for _, flag := range []string{"-v", "--verbose"} {
		t.Run(flag, func(t *testing.T) {
			stdout, stderr, code := run(t, flag, "info", file)
			assert.Equal(t, -1, code)
			assert.Empty(t, stderr)
			assert.Equal(t, "ppm 16x9\n", stdout)
		})
	}

	t.Run("file flag", func(t *testing.T) {
		stdout, _, code := run(t, "--file", file, "info")
		assert.Equal(t, -1, code)
		assert.Equal(t, "ppm 16x9\n", stdout)
	})
}

func TestVersion(t *testing.T) {
	for _, flag := range []string{"-V", "--version"} {
		stdout, _, code := run(t, flag)
		assert.Equal(t, -1, code)
		assert.Equal(t, "ppmview version 1.0.0\n", stdout)
	}
}

func TestExitCode(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "ascii.ppm")
	require.NoError(t, ioutil.WriteFile(bad, []byte("P3\n1 1\n255\n0 0 0\n"), 0644))
	missing := filepath.Join(dir, "missing.ppm")

	tables := []struct {
		name string
		args []string
		want string
	}{
		{"info bad tag", []string{"info", bad}, ppm.ErrInvalidFormatTag.Error()},
		{"info missing", []string{"info", missing}, "cannot open " + missing},
		{"view bad tag", []string{"view", bad}, ppm.ErrInvalidFormatTag.Error()},
		{"view missing", []string{"view", "--resizable", missing}, "cannot open " + missing},
		{"convert bad tag", []string{"convert", bad, filepath.Join(dir, "out.png")}, ppm.ErrInvalidFormatTag.Error()},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			stdout, stderr, code := run(t, table.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, table.want)
		})
	}
}
