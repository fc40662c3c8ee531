// Package render draws the contact heatmap and the contacts-by-domain chart
// with gonum/plot and encodes the CSV exports, entirely in memory.
//
// Plots are written through vg formatted canvases (vgimg for png and jpg,
// vgsvg for svg) into a buffer. Text is set in the embedded Go fonts unless a
// TrueType file is given. Nothing touches the filesystem here; the returned
// domain.Artifact values are saved by the store.
package render
