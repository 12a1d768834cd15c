// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	m := NewLevenshtein()
	assert.Equal(t, 0.0, m.Distance("hello", "hello"))
	assert.Equal(t, 1.0, m.Distance("helo", "hello"))
	assert.Equal(t, 3.0, m.Distance("kitten", "sitting"))
	assert.Equal(t, 1.0, m.Distance("Hello", "hello"))
	assert.Equal(t, 5.0, m.Distance("", "hello"))
}

func TestByName(t *testing.T) {
	for _, nm := range Names() {
		m, err := ByName(nm)
		require.NoError(t, err, nm)
		assert.InDelta(t, 0.0, m.Distance("spell", "spell"), 1e-9, nm)
		assert.GreaterOrEqual(t, m.Distance("spell", "spill"), 0.0, nm)
	}

	m, err := ByName("")
	require.NoError(t, err)
	assert.IsType(t, &Levenshtein{}, m)

	m, err = ByName("Jaro-Winkler")
	require.NoError(t, err)
	assert.Less(t, m.Distance("hello", "helo"), m.Distance("hello", "world"))

	_, err = ByName("soundex")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestFunc(t *testing.T) {
	m := Func(func(a, b string) float64 { return float64(len(a) - len(b)) })
	assert.Equal(t, 2.0, m.Distance("abc", "a"))
}
