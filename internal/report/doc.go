// Package report formats analysis results for the terminal: the two
// margin lines printed on every run and an optional styled summary.
package report
