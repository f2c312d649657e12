package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sample1.nd2", "sample1"},
		{"recipe.ijm", "recipe"},
		{"two.dots.nd2", "two.dots"},
		{"noext", "noext"},
		{"short.h5", "short"},
	}
	for _, test := range tests {
		got := TrimExt(test.in)
		if got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}

func TestJobID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sample1", "e8513079"},
		{"sample2", "5a939278"},
		{"a b", "c8687a08"},
	}
	for _, test := range tests {
		got := JobID(test.in)
		if got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
	assert.Equal(t, JobID("sample1"), JobID("sample1"))
	assert.Len(t, JobID(""), IDLEN)
}

func TestEnsureDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, EnsureDir(fs, Discard(), "out/scripts"))
	ok, err := afero.DirExists(fs, "out/scripts")
	require.NoError(t, err)
	assert.True(t, ok)

	// existing directories are left alone
	require.NoError(t, afero.WriteFile(fs, "out/scripts/a.sh", []byte("x"), 0644))
	require.NoError(t, EnsureDir(fs, Discard(), "out/scripts"))
	got, err := afero.ReadFile(fs, "out/scripts/a.sh")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}

func TestListDir(t *testing.T) {
	tmp := t.TempDir()
	for _, f := range []string{"s.nd2", "zeta.ijm", "alpha.ijm", "mid.ijm", "beta.ijm", "omega.ijm"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmp, f), nil, 0644))
	}
	// same order as reading the directory directly, with no sorting
	d, err := os.Open(tmp)
	require.NoError(t, err)
	want, err := d.Readdirnames(-1)
	d.Close()
	require.NoError(t, err)

	entries, err := ListDir(afero.NewOsFs(), tmp)
	require.NoError(t, err)
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.Name()
	}
	assert.Equal(t, want, got)

	_, err = ListDir(afero.NewOsFs(), filepath.Join(tmp, "missing"))
	assert.Error(t, err)
}
