// Package analysis characterizes displacement traces from headless runs.
//
//   - [PowerSpectrum]: FFT magnitude spectrum of a trace
//   - [DominantFrequency]: strongest oscillation of the settle motion
//   - [DecayRatio]: how far a trace has settled toward rest
package analysis
