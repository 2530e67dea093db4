package tuesday

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDIMACS reads a problem in the DIMACS CNF format and returns its
// clauses as integer literals, ready for NewClauseSet.
//
// A few common non-standard variations are tolerated: comment lines may
// appear anywhere, the problem line may be missing, and a line holding a
// single % terminates the clause section (some benchmark suites attach
// trailers that way).
func ParseDIMACS(r io.Reader) ([][]int, error) {
	declaredVars, declaredClauses := -1, -1
	var clauses [][]int
	var clause []int
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 || len(clause) > 0 {
				return nil, errors.New("problem line appears after clauses")
			}
			if declaredVars >= 0 {
				return nil, errors.New("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" {
				return nil, fmt.Errorf("malformed problem line %q", line)
			}
			if fields[1] != "cnf" {
				return nil, fmt.Errorf("only cnf supported; got %q", fields[1])
			}
			var err error
			if declaredVars, err = strconv.Atoi(fields[2]); err != nil || declaredVars < 0 {
				return nil, fmt.Errorf("malformed #vars in problem line %q", line)
			}
			if declaredClauses, err = strconv.Atoi(fields[3]); err != nil || declaredClauses < 0 {
				return nil, fmt.Errorf("malformed #clauses in problem line %q", line)
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid literal: %s", err)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}

	if declaredVars > 0 {
		seen := make(map[int]struct{})
		for _, cls := range clauses {
			for _, v := range cls {
				if v < 0 {
					v = -v
				}
				if v > declaredVars {
					return nil, fmt.Errorf("formula contains var %d, but problem line asserts %d vars",
						v, declaredVars)
				}
				seen[v] = struct{}{}
			}
		}
		// Missing vars are fine; extra ones are not.
		if len(seen) > declaredVars {
			return nil, fmt.Errorf("problem line specifies %d vars, but there are %d", declaredVars, len(seen))
		}
		if len(clauses) != declaredClauses {
			return nil, fmt.Errorf("problem line specifies %d clauses, but there are %d", declaredClauses, len(clauses))
		}
	}
	return clauses, nil
}

// WriteDIMACS writes problem in the DIMACS CNF format, one clause per line.
func WriteDIMACS(w io.Writer, problem [][]int) error {
	maxVar := 0
	for _, cls := range problem {
		for _, v := range cls {
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", maxVar, len(problem))
	for _, cls := range problem {
		for _, v := range cls {
			fmt.Fprintf(bw, "%d ", v)
		}
		fmt.Fprintln(bw, "0")
	}
	return bw.Flush()
}
