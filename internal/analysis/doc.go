// Package analysis provides classical frequency- and time-domain analysis
// of linear systems.
//
// The package includes the three analyses behind a stability report:
//
//   - [Margins]: gain and phase margins with their crossover frequencies
//   - [Bode]: magnitude and unwrapped phase over a logarithmic sweep
//   - [Step]: unit-step response over a horizon derived from the poles
//   - [Analyze]: runs all three and derives the [Verdict]
//
// # Stability Verdict
//
// A loop is reported stable when both margins are positive:
//
//	m, _ := analysis.Margins(lti.Plant())
//	if analysis.Assess(m) == analysis.Stable {
//	    // GM > 0 dB and PM > 0°
//	}
package analysis
