package portdash

// USD is a helper for tests to create money from const
func USD(v float64) Money { return M(v) }

// cb is a helper for tests to create a known cost basis
func cb(v float64) *Money {
	m := M(v)
	return &m
}
