package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/scalecode-solutions/runenorm"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name  string
		args  []string
		form  runenorm.Form
		files []string
		err   bool
	}{
		{"defaults", nil, runenorm.NFC, []string{"-"}, false},
		{"short form", []string{"-f", "nfkd", "a.txt"}, runenorm.NFKD, []string{"a.txt"}, false},
		{"long form", []string{"--form=NFD", "a.txt", "b.txt"}, runenorm.NFD, []string{"a.txt", "b.txt"}, false},
		{"double dash", []string{"--", "-f"}, runenorm.NFC, []string{"-f"}, false},
		{"unknown form", []string{"-f", "nfx"}, 0, nil, true},
		{"bad debug level", []string{"-d", "loud"}, 0, nil, true},
		{"unknown flag", []string{"--nope"}, 0, nil, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, files, err := loadConfig(tc.args)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.form, cfg.form)
			require.Equal(t, tc.files, files)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	r := require.New(t)

	_, _, err := loadConfig([]string{"-f", "nfx"})
	r.True(errors.Is(err, runenorm.ErrUnknownForm))

	_, _, err = loadConfig([]string{"--nope"})
	var flagErr *flags.Error
	r.True(errors.As(err, &flagErr))
	r.Equal(flags.ErrUnknownFlag, flagErr.Type)
}

func TestNormalizeInputs(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "in.txt")
	r.NoError(os.WriteFile(file, []byte("A\u030a\u2126"), 0600))

	cfg, names, err := loadConfig([]string{"-f", "NFC", file, "-"})
	r.NoError(err)

	var out bytes.Buffer
	err = normalizeInputs(cfg, names, strings.NewReader("\ufb01e\u0301"), &out)
	r.NoError(err)
	r.Equal("\u00c5\u03a9\ufb01\u00e9", out.String())

	r.Error(normalizeInputs(cfg, []string{filepath.Join(dir, "missing")}, nil, &out))
}

func TestNormalizeInputsStreamSafe(t *testing.T) {
	r := require.New(t)

	cfg, names, err := loadConfig([]string{"-f", "NFKD", "--streamsafe"})
	r.NoError(err)

	var out bytes.Buffer
	in := "a" + strings.Repeat("\u0301", 31)
	r.NoError(normalizeInputs(cfg, names, strings.NewReader(in), &out))
	r.Equal("a"+strings.Repeat("\u0301", 30)+"\u034f\u0301", out.String())
}

func TestCheckInputs(t *testing.T) {
	r := require.New(t)

	cfg, names, err := loadConfig([]string{"--check", "-f", "NFD"})
	r.NoError(err)

	var out bytes.Buffer
	r.NoError(checkInputs(cfg, names, strings.NewReader("e\u0301"), &out))
	r.Equal("-: NFD quick check Yes, normalized true\n", out.String())

	out.Reset()
	err = checkInputs(cfg, names, strings.NewReader("\u00e9"), &out)
	r.True(errors.Is(err, errNotNormalized))
	r.Equal("-: NFD quick check NotYes, normalized false\n", out.String())

	out.Reset()
	err = checkInputs(cfg, names, strings.NewReader("\xff"), &out)
	r.True(errors.Is(err, errNotNormalized))
	r.Equal("-: NFD quick check IllFormed, normalized false\n", out.String())
}
