// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Includes []string
	Dict     string `flag:"d,dict" env:"CLITEST_DICT" desc:"dictionary directory"`
	Punct    string `flag:"punct" default:".,!?"`
	Metric   string `flag:"metric" env:"CLITEST_METRIC" default:"levenshtein"`
	Verbose  bool   `flag:"v" desc:"verbose"`
	Depth    int    `default:"2"`
}

func (c *testConfig) IncludesPtr() *[]string { return &c.Includes }

func testOptions(t *testing.T) (*Options, string) {
	dir := t.TempDir()
	opts := DefaultOptions("clitest", "clitest tests the cli package")
	opts.IncludePaths = []string{dir}
	opts.DotEnvFiles = []string{filepath.Join(dir, ".env")}
	opts.Output = &bytes.Buffer{}
	return opts, dir
}

func writeFile(t *testing.T, dir, name, content string) {
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestParseDefaults(t *testing.T) {
	opts, _ := testOptions(t)
	cfg := &testConfig{}
	rest, err := Parse(opts, cfg, []string{"fix", "helo"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fix", "helo"}, rest)
	assert.Equal(t, ".,!?", cfg.Punct)
	assert.Equal(t, "levenshtein", cfg.Metric)
	assert.Equal(t, 2, cfg.Depth)
	assert.False(t, cfg.Verbose)
}

func TestParsePrecedence(t *testing.T) {
	opts, dir := testOptions(t)
	writeFile(t, dir, "clitest.toml", "Dict = 'from-file'\nPunct = '.'\nMetric = 'jaro'\n")
	writeFile(t, dir, ".env", "CLITEST_METRIC=hamming\n")
	t.Setenv("CLITEST_DICT", "from-env")
	t.Cleanup(func() { os.Unsetenv("CLITEST_METRIC") })

	cfg := &testConfig{}
	rest, err := Parse(opts, cfg, []string{"-v", "-d", "from-flag", "check"})
	require.NoError(t, err)
	assert.Equal(t, []string{"check"}, rest)
	assert.Equal(t, "from-flag", cfg.Dict)
	assert.Equal(t, ".", cfg.Punct)
	assert.Equal(t, "hamming", cfg.Metric)
	assert.True(t, cfg.Verbose)

	cfg = &testConfig{}
	_, err = Parse(opts, cfg, []string{"-dict=other"})
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.Dict)
}

func TestParseIncludes(t *testing.T) {
	opts, dir := testOptions(t)
	writeFile(t, dir, "base.toml", "Dict = 'base'\nPunct = ';'\nMetric = 'jaro'\n")
	writeFile(t, dir, "mid.toml", "Includes = ['base.toml']\nPunct = ':'\n")
	writeFile(t, dir, "top.toml", "Includes = ['mid.toml']\nMetric = 'overlap'\n")

	cfg := &testConfig{}
	_, err := Parse(opts, cfg, []string{"-config", "top.toml"})
	require.NoError(t, err)
	assert.Equal(t, "base", cfg.Dict)
	assert.Equal(t, ":", cfg.Punct)
	assert.Equal(t, "overlap", cfg.Metric)
	assert.Equal(t, []string{"mid.toml", "base.toml"}, cfg.Includes)

	_, err = Parse(opts, &testConfig{}, []string{"-config", "missing.toml"})
	assert.Error(t, err)

	writeFile(t, dir, "bad.toml", "Includes = ['nothere.toml']\n")
	_, err = Parse(opts, &testConfig{}, []string{"-config", "bad.toml"})
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	opts, _ := testOptions(t)
	_, err := Parse(opts, &testConfig{}, []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, opts.Output.(*bytes.Buffer).String(), "dictionary directory")

	_, err = Parse(opts, &testConfig{}, []string{"-unknown"})
	assert.Error(t, err)

	type badConfig struct {
		N int `flag:"n"`
	}
	_, err = Parse(opts, &badConfig{}, []string{"-n", "many"})
	assert.Error(t, err)
}

func TestSetFromEnv(t *testing.T) {
	t.Setenv("CLITEST_DICT", "~/dicts")
	cfg := &testConfig{Dict: "before", Metric: "kept"}
	require.NoError(t, SetFromEnv(cfg))
	assert.Equal(t, "~/dicts", cfg.Dict)
	assert.Equal(t, "kept", cfg.Metric)
}

func TestParseFirstConfigWins(t *testing.T) {
	opts, local := testOptions(t)
	home := t.TempDir()
	opts.IncludePaths = []string{local, home}
	writeFile(t, local, "clitest.toml", "Dict = 'local'\n")
	writeFile(t, home, "clitest.toml", "Dict = 'home'\nPunct = ';'\n")

	cfg := &testConfig{}
	_, err := Parse(opts, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Dict)
	assert.Equal(t, ".,!?", cfg.Punct)

	require.NoError(t, os.Remove(filepath.Join(local, "clitest.toml")))
	cfg = &testConfig{}
	_, err = Parse(opts, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "home", cfg.Dict)
	assert.Equal(t, ";", cfg.Punct)
}
