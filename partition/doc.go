// Package partition defines Group, the shared cluster representation
// passed between duplicate merging, outlier stripping, and the recursive
// refinement driver. A Group carries the sigma and class computed by the
// quality package, which does not itself use Group.
//
// Clusters are identified purely by their position in a []Group slice;
// members never point back at a cluster except through an assignment
// map, avoiding cyclic member<->cluster links.
package partition
