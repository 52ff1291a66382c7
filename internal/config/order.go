package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateAction is returned when two actions share a name.
	ErrDuplicateAction = errors.New("duplicate action name")
	// ErrUnknownDependency is returned when depends_on names no action.
	ErrUnknownDependency = errors.New("unknown dependency")
	// ErrDependencyCycle is returned when actions depend on each other in a loop.
	ErrDependencyCycle = errors.New("dependency cycle")
)

// Ordered returns the actions sorted so every action comes after all the
// actions it depends on. Among actions that are ready at the same time,
// declaration order wins.
//
// The returned index map gives the position of each action name in the
// result.
func (m *Model) Ordered() ([]*Action, map[string]int, error) {
	byName := make(map[string]int, len(m.Actions))
	for i, a := range m.Actions {
		if prev, ok := byName[a.Name]; ok {
			return nil, nil, fmt.Errorf("%w: '%s' declared at %s and %s", ErrDuplicateAction, a.Name, m.Actions[prev].Source, a.Source)
		}
		byName[a.Name] = i
	}

	indegree := make([]int, len(m.Actions))
	dependents := make([][]int, len(m.Actions))
	for i, a := range m.Actions {
		seen := make(map[string]struct{}, len(a.DependsOn))
		for _, dep := range a.DependsOn {
			if _, dup := seen[dep]; dup {
				continue
			}
			seen[dep] = struct{}{}

			j, ok := byName[dep]
			if !ok {
				return nil, nil, fmt.Errorf("%w: action '%s' depends on '%s'", ErrUnknownDependency, a.Name, dep)
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	// ready is kept sorted by declaration index.
	var ready []int
	for i, d := range indegree {
		if d == 0 {
			ready = append(ready, i)
		}
	}

	ordered := make([]*Action, 0, len(m.Actions))
	position := make(map[string]int, len(m.Actions))
	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		position[m.Actions[i].Name] = len(ordered)
		ordered = append(ordered, m.Actions[i])

		for _, j := range dependents[i] {
			indegree[j]--
			if indegree[j] == 0 {
				ready = insertSorted(ready, j)
			}
		}
	}

	if len(ordered) != len(m.Actions) {
		var stuck []string
		for i, d := range indegree {
			if d > 0 {
				stuck = append(stuck, m.Actions[i].Name)
			}
		}
		return nil, nil, fmt.Errorf("%w between actions: %s", ErrDependencyCycle, strings.Join(stuck, ", "))
	}
	return ordered, position, nil
}

func insertSorted(s []int, v int) []int {
	i := len(s)
	for i > 0 && s[i-1] > v {
		i--
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
