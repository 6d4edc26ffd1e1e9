// Package quality computes per-cluster spread (sigma) and classifies each
// cluster into Good, Outline, or Reclusterize against configured
// thresholds.
package quality
