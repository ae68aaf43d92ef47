// Package gmix provides the building blocks of a Gaussian mixture model:
// Core, a single multivariate Gaussian component with a mean, a covariance
// representation, and a mixture weight, and CoreCluster, a hierarchical
// grouping of Cores with parent/child links to other clusters.
//
// Basic usage:
//
//	core, err := gmix.NewCore([]float64{0, 0}, []float64{1, 1}, nil, nil)
//	// core.Pdf(x) evaluates the density at a single point
//	// core.PdfBatch(xs) evaluates one density per row
//	// core.Sample(n, rng) draws n points from the component
//
// A Core's Sigma is flat row-major: a slice of length d holds per-dimension
// variances (independent dimensions, the fast path), while a slice of length
// d×d holds a full covariance matrix evaluated through gonum's multivariate
// normal.
//
// # Grouping components
//
// CoreCluster collects Cores and links clusters into a hierarchy. Links are
// plain references: adding a child to one cluster does not register the
// parent on the other side, and a Core's Cluster back-reference is never
// cross-checked against cluster membership.
//
//	cluster, err := gmix.NewCoreCluster([]*gmix.Core{a, b}, nil, nil)
//	// cluster.Pdf(x) is the weight-averaged mixture density over members
//	// cluster.Sample(n, rng) draws points by ancestral sampling
//
// # Randomness
//
// Operations that consume randomness accept an explicit *rand.Rand. Passing
// nil uses a process-wide shared generator, created on first use; see
// [RandomState] for seeding and reproducibility.
package gmix
