package coeffs

// Normalize folds every square-monomial coefficient into the matching
// linear coefficient (x^2 = x over GF(2)) and zeroes the square slot, for
// every equation in s. It is pure and idempotent: calling it twice has the
// same effect as calling it once.
func Normalize(s *Store) {
	for e := 0; e < s.m; e++ {
		for v := 0; v < s.n; v++ {
			sq := SquareIndex(v)
			lin := LinearIndex(s.n, v)
			s.Set(e, lin, s.Get(e, lin)^s.Get(e, sq))
			s.Set(e, sq, 0)
		}
	}
}
