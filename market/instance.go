// SPDX-License-Identifier: MIT

package market

// Instance is one problem: the tuple
// (n, distance_matrix, time_budget, capacity, initial_capital, reserve_capital, items_by_port).
//
// n is len(Dist). Items[p][k] is item type k at port p; every port offers the
// same number of types.
type Instance struct {
	ID    string      `yaml:"id,omitempty" json:"id,omitempty"`
	Dist  [][]float64 `yaml:"dist" json:"dist"`
	TMax  float64     `yaml:"t_max" json:"t_max"`
	CMax  float64     `yaml:"c_max" json:"c_max"`
	K0    float64     `yaml:"k0" json:"k0"`
	KMin  float64     `yaml:"k_min" json:"k_min"`
	Items [][]Item    `yaml:"items" json:"items"`
}

// Ports returns the number of ports, home included.
func (in *Instance) Ports() int { return len(in.Dist) }

// Kinds returns the number of item types per port.
func (in *Instance) Kinds() int {
	if len(in.Items) == 0 {
		return 0
	}

	return len(in.Items[0])
}

// Clone returns a deep copy; solvers and generators never alias caller tables.
func (in *Instance) Clone() *Instance {
	cp := *in
	cp.Dist = make([][]float64, len(in.Dist))
	for i := range in.Dist {
		cp.Dist[i] = append([]float64(nil), in.Dist[i]...)
	}
	cp.Items = make([][]Item, len(in.Items))
	for i := range in.Items {
		cp.Items[i] = append([]Item(nil), in.Items[i]...)
	}

	return &cp
}

// Oracle is a flat, read-only copy of the travel-time table.
// It is safe for concurrent use.
type Oracle struct {
	n int
	w []float64
}

// NewOracle prefetches in.Dist into a dense row-major buffer.
func NewOracle(in *Instance) Oracle {
	n := in.Ports()
	w := make([]float64, n*n)

	var i int
	for i = 0; i < n; i++ {
		copy(w[i*n:(i+1)*n], in.Dist[i])
	}

	return Oracle{n: n, w: w}
}

// Ports returns the table order.
func (o Oracle) Ports() int { return o.n }

// Time returns the travel time p→q.
func (o Oracle) Time(p, q int) float64 { return o.w[p*o.n+q] }

// CanVisit reports whether q is a legal next stop from p with remaining budget r:
// r ≥ t(p,q) + t(q,Home). For q == Home this reduces to r ≥ t(p,Home).
func (o Oracle) CanVisit(remaining float64, p, q int) bool {
	return remaining >= o.w[p*o.n+q]+o.w[q*o.n+Home]
}
