// SPDX-License-Identifier: MIT

// Package plotting renders the charts of the other packages with
// gonum.org/v1/plot: a regression line over its scatter, histograms,
// labeled scatters (one color per class) and bar charts.
//
// Builders return a *plot.Plot so callers can tweak it further; Save and
// Encode write it as PNG, SVG, PDF or any other format gonum/plot supports.
// Nothing here touches the filesystem except Save.
package plotting
