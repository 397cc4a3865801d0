package dsl

import (
	kruto "github.com/reoring/kruto"
)

// Grid binds a list of lists stored as [][]E, such as the rows of a keyboard.
// n is the full node of the field, for example List(List(x)).
func Grid[T, E any](name, key string, n kruto.Node, at func(*T) *[][]E) Field[T] {
	return Field[T]{
		name: name,
		key:  key,
		node: n,
		set: func(t *T, v any) error {
			rows, ok := v.([]any)
			if !ok {
				return mismatch[[][]E](key, v)
			}
			out := make([][]E, 0, len(rows))
			for _, r := range rows {
				cells, ok := r.([]any)
				if !ok {
					return mismatch[[]E](key, r)
				}
				row := make([]E, 0, len(cells))
				for _, c := range cells {
					e, ok := assign[E](c)
					if !ok {
						return mismatch[E](key, c)
					}
					row = append(row, e)
				}
				out = append(out, row)
			}
			*at(t) = out
			return nil
		},
		get: func(t *T) any {
			g := *at(t)
			if g == nil {
				return nil
			}
			out := make([]any, len(g))
			for i, row := range g {
				cells := make([]any, len(row))
				for j, c := range row {
					cells[j] = c
				}
				out[i] = cells
			}
			return out
		},
	}
}
