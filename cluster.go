package gmix

import "fmt"

// CoreCluster is a collection of Cores that belong to one cluster, with
// hierarchical links to parent and child clusters.
//
// Links are plain references with no consistency maintenance: adding X to
// Y's Children does not add Y to X's Parents, and a member Core's Cluster
// back-reference is never cross-checked against Cores. The link graph may
// form a DAG; nothing guards against cycles.
type CoreCluster struct {
	// Cores holds the member components, in the order given at
	// construction.
	Cores []*Core

	// Parents and Children link this cluster into a hierarchy. Neither
	// side owns the other.
	Parents  []*CoreCluster
	Children []*CoreCluster
}

// NewCoreCluster constructs and validates a CoreCluster. Each collection
// may be nil or empty.
func NewCoreCluster(cores []*Core, parents, children []*CoreCluster) (*CoreCluster, error) {
	cc := &CoreCluster{
		Cores:    cores,
		Parents:  parents,
		Children: children,
	}
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	return cc, nil
}

// Validate checks that every collection element is a usable reference.
// Empty collections are accepted. Unlike Core, a CoreCluster is validated
// only at construction; call Validate directly after mutating fields.
func (cc *CoreCluster) Validate() error {
	for i, core := range cc.Cores {
		if core == nil {
			return fmt.Errorf("%w: cores must be a list of Cores, element %d is nil", ErrInvalidParameter, i)
		}
	}
	for i, p := range cc.Parents {
		if p == nil {
			return fmt.Errorf("%w: parents must be a list of CoreClusters, element %d is nil", ErrInvalidParameter, i)
		}
	}
	for i, ch := range cc.Children {
		if ch == nil {
			return fmt.Errorf("%w: children must be a list of CoreClusters, element %d is nil", ErrInvalidParameter, i)
		}
	}
	return nil
}

// Pdf evaluates the mixture density at a single query point: the
// Delta-weighted average of member densities, with weights normalized by
// their sum. Fails with ErrInvalidParameter if the cluster has no members
// or all weights are zero.
func (cc *CoreCluster) Pdf(x []float64) (float64, error) {
	out, err := cc.PdfBatch([][]float64{x})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// PdfBatch evaluates the mixture density at each row of xs and returns one
// value per row.
func (cc *CoreCluster) PdfBatch(xs [][]float64) ([]float64, error) {
	total, err := cc.totalWeight()
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	for _, core := range cc.Cores {
		densities, err := core.PdfBatch(xs)
		if err != nil {
			return nil, err
		}
		w := core.Weight() / total
		for i, p := range densities {
			out[i] += w * p
		}
	}
	return out, nil
}

// totalWeight sums member weights, rejecting empty or all-zero mixtures.
func (cc *CoreCluster) totalWeight() (float64, error) {
	if err := cc.Validate(); err != nil {
		return 0, err
	}
	if len(cc.Cores) == 0 {
		return 0, fmt.Errorf("%w: cluster has no member cores", ErrInvalidParameter)
	}
	var total float64
	for _, core := range cc.Cores {
		if err := core.Validate(); err != nil {
			return 0, err
		}
		total += core.Weight()
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w: member weights sum to %v, want > 0", ErrInvalidParameter, total)
	}
	return total, nil
}
