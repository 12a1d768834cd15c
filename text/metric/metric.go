// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metric provides the string distances used to rank
// spelling suggestions, backed by github.com/adrg/strutil.
package metric

import (
	"fmt"
	"sort"
	"strings"

	"cogentcore.org/spellfix/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ErrUnknownMetric is returned by [ByName] for names it does not know.
var ErrUnknownMetric = errors.New("unknown metric")

// Metric scores the distance between two strings.
// Lower is more similar, and the distance is never negative.
type Metric interface {
	Distance(a, b string) float64
}

// Func adapts an ordinary function to a [Metric].
type Func func(a, b string) float64

func (f Func) Distance(a, b string) float64 { return f(a, b) }

// Levenshtein is the case sensitive edit distance with unit costs
// for insertion, deletion and substitution.
type Levenshtein struct {
	lev *metrics.Levenshtein
}

// NewLevenshtein returns a new [Levenshtein] metric.
func NewLevenshtein() *Levenshtein {
	return &Levenshtein{lev: metrics.NewLevenshtein()}
}

// Distance returns the number of edits needed to turn a into b.
func (l *Levenshtein) Distance(a, b string) float64 {
	return float64(l.lev.Distance(a, b))
}

// Similarity turns any strutil similarity metric, which scores
// in [0, 1] with 1 meaning equal, into a distance of 1 - similarity.
type Similarity struct {
	Metric strutil.StringMetric
}

// Distance returns 1 minus the similarity of a and b.
func (s Similarity) Distance(a, b string) float64 {
	return 1 - strutil.Similarity(a, b, s.Metric)
}

var named = map[string]func() Metric{
	"levenshtein":          func() Metric { return NewLevenshtein() },
	"hamming":              func() Metric { return Similarity{metrics.NewHamming()} },
	"jaro":                 func() Metric { return Similarity{metrics.NewJaro()} },
	"jaro-winkler":         func() Metric { return Similarity{metrics.NewJaroWinkler()} },
	"jaccard":              func() Metric { return Similarity{metrics.NewJaccard()} },
	"sorensen-dice":        func() Metric { return Similarity{metrics.NewSorensenDice()} },
	"overlap":              func() Metric { return Similarity{metrics.NewOverlapCoefficient()} },
	"smith-waterman-gotoh": func() Metric { return Similarity{metrics.NewSmithWatermanGotoh()} },
}

// ByName returns a new instance of the metric with the given name,
// which is matched without regard to case. The empty name selects
// levenshtein.
func ByName(name string) (Metric, error) {
	if name == "" {
		name = "levenshtein"
	}
	f, ok := named[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownMetric, name, strings.Join(Names(), ", "))
	}
	return f(), nil
}

// Names returns the sorted names accepted by [ByName].
func Names() []string {
	nms := make([]string, 0, len(named))
	for nm := range named {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}
