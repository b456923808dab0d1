// Package render draws the analysis figure with gonum/plot and writes it
// as PNG, JPEG or SVG. A lighter terminal rendition is available through
// [Preview].
package render
