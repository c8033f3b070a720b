// Package satref is a small DPLL solver with unit propagation, used only by
// this module's own tests as a stand-in for the externally supplied
// sat.SatSolver capability (spec.md §1 Non-goals: the kernel ships no
// solver). It is not tuned for performance and must never be imported
// outside _test.go files.
package satref

import "github.com/polyform/tilekernel/pkg/sat"

// Solver is a reference sat.SatSolver implementation backed by a
// backtracking DPLL search with unit propagation.
type Solver struct {
	numVars int
	clauses [][]int
}

// New returns an empty reference solver.
func New() *Solver {
	return &Solver{}
}

func (s *Solver) NewVariable() int {
	s.numVars++
	return s.numVars
}

func (s *Solver) AddClause(lits []int) {
	clause := make([]int, len(lits))
	copy(clause, lits)
	s.clauses = append(s.clauses, clause)
}

func (s *Solver) NumVariables() int { return s.numVars }
func (s *Solver) NumClauses() int   { return len(s.clauses) }

// Solve runs DPLL with unit propagation.
func (s *Solver) Solve() (sat.SolveResult, error) {
	assign := make([]int8, s.numVars+1) // 0 unknown, 1 true, -1 false
	if ok := s.search(assign); ok {
		model := make([]bool, s.numVars)
		for v := 1; v <= s.numVars; v++ {
			model[v-1] = assign[v] == 1
		}
		return sat.SolveResult{Outcome: sat.Sat, Model: model}, nil
	}
	return sat.SolveResult{Outcome: sat.Unsat}, nil
}

func (s *Solver) search(assign []int8) bool {
	cur, ok := propagate(s.clauses, assign)
	if !ok {
		return false
	}

	v := firstUnassigned(cur)
	if v == 0 {
		copy(assign, cur)
		return true // every clause satisfied or vacuous, all vars decided
	}

	for _, try := range [2]int8{1, -1} {
		next := make([]int8, len(cur))
		copy(next, cur)
		next[v] = try
		if s.search(next) {
			copy(assign, next)
			return true
		}
	}
	return false
}

func firstUnassigned(assign []int8) int {
	for v := 1; v < len(assign); v++ {
		if assign[v] == 0 {
			return v
		}
	}
	return 0
}

// propagate applies unit propagation to a fresh copy of assign until a
// fixed point, a conflict, or no unit clauses remain.
func propagate(clauses [][]int, assign []int8) ([]int8, bool) {
	cur := make([]int8, len(assign))
	copy(cur, assign)

	for {
		changed := false
		for _, clause := range clauses {
			status, unit := evalClause(clause, cur)
			switch status {
			case clauseFalse:
				return cur, false
			case clauseUnit:
				v := unit
				if v > 0 {
					cur[v] = 1
				} else {
					cur[-v] = -1
				}
				changed = true
			}
		}
		if !changed {
			return cur, true
		}
	}
}

type clauseStatus int

const (
	clauseSat clauseStatus = iota
	clauseFalse
	clauseUnit
	clauseUndecided
)

// evalClause reports the clause's status under cur, and if status is
// clauseUnit, the single unassigned literal that must be set true.
func evalClause(clause []int, cur []int8) (clauseStatus, int) {
	if len(clause) == 0 {
		return clauseFalse, 0
	}
	unassignedCount := 0
	var lastUnassigned int
	for _, lit := range clause {
		v := lit
		if v < 0 {
			v = -v
		}
		val := cur[v]
		litTrue := (lit > 0 && val == 1) || (lit < 0 && val == -1)
		if litTrue {
			return clauseSat, 0
		}
		if val == 0 {
			unassignedCount++
			lastUnassigned = lit
		}
	}
	if unassignedCount == 0 {
		return clauseFalse, 0
	}
	if unassignedCount == 1 {
		return clauseUnit, lastUnassigned
	}
	return clauseUndecided, 0
}
