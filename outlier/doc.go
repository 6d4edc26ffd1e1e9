// Package outlier implements 3-sigma stripping (C8): members of a Good or
// Outline cluster deviating more than three sigma from its centroid are
// removed and appended to the outlier pool. Classification is
// re-evaluated once after stripping; no further cascading strip is
// performed on the same cluster.
package outlier
