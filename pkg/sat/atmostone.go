package sat

// addAtMostOne encodes "at most one of lits is true" into solver, choosing
// the pairwise encoding for small groups and the Sinz sequential counter
// otherwise (spec.md §4.4 item 3): pairwise for n <= 4, Sinz for n >= 5.
func addAtMostOne(solver SatSolver, lits []int) {
	n := len(lits)
	if n < 2 {
		return
	}
	if n <= 4 {
		addPairwiseAtMostOne(solver, lits)
		return
	}
	addSinzAtMostOne(solver, lits)
}

// addPairwiseAtMostOne adds C(n,2) clauses (¬li ∨ ¬lj) for every i<j.
func addPairwiseAtMostOne(solver SatSolver, lits []int) {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			solver.AddClause([]int{-lits[i], -lits[j]})
		}
	}
}

// addSinzAtMostOne implements the sequential-counter at-most-one encoding
// (Sinz 2005): n-1 auxiliary variables s_1..s_{n-1} and 3n-4 clauses.
//
//	(¬l1 ∨ s1)
//	for i = 2..n-1: (¬li ∨ si), (¬s(i-1) ∨ si), (¬s(i-1) ∨ ¬li)
//	(¬s(n-1) ∨ ¬ln)
func addSinzAtMostOne(solver SatSolver, lits []int) {
	n := len(lits)
	s := make([]int, n-1)
	for i := range s {
		s[i] = solver.NewVariable()
	}

	solver.AddClause([]int{-lits[0], s[0]})
	for i := 1; i < n-1; i++ {
		solver.AddClause([]int{-lits[i], s[i]})
		solver.AddClause([]int{-s[i-1], s[i]})
		solver.AddClause([]int{-s[i-1], -lits[i]})
	}
	solver.AddClause([]int{-s[n-2], -lits[n-1]})
}
