// Package dfs implements preorder depth-first traversal of a rooted tree stored
// as a parent slice (parent[v] is v's parent, NoParent for the root).
//
// Key features:
//   - Children(parent): child lists in increasing index order.
//   - Preorder(parent, root, opts...): visit a node, then each child subtree in
//     increasing index order. Iterative (explicit stack), so deep trees such as
//     long chains do not grow the goroutine stack.
//   - WithOnVisit hook; an error from the hook aborts traversal.
//
// Complexity:
//   - Time:   O(V) for Children and Preorder.
//   - Memory: O(V) for child lists, the stack and the visited marks.
package dfs

import "fmt"

// Children groups vertices by parent. The result has one slice per vertex and
// each slice is in increasing index order because vertices are scanned in order.
// Parents outside [0, n) are ignored here; Preorder reports them.
func Children(parent []int) [][]int {
	n := len(parent)
	out := make([][]int, n)
	var v, p int
	for v = 0; v < n; v++ {
		p = parent[v]
		if p < 0 || p >= n || p == v {
			continue
		}
		out[p] = append(out[p], v)
	}

	return out
}

// Preorder returns the vertices of the tree rooted at root in preorder.
//
// Steps:
//  1. Validate root and every parent entry.
//  2. Build child lists (Children).
//  3. Pop a vertex, mark it, invoke OnVisit, push its children in reverse so
//     the smallest index is expanded first.
//  4. Every vertex must be visited exactly once, otherwise ErrNotATree.
//
// An empty parent slice yields an empty order and no error.
func Preorder(parent []int, root int, opts ...Option) ([]int, error) {
	cfg := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	// 1. Validate.
	n := len(parent)
	if n == 0 {
		return []int{}, nil
	}
	if root < 0 || root >= n {
		return nil, ErrRootOutOfRange
	}
	var v int
	for v = 0; v < n; v++ {
		if parent[v] != NoParent && (parent[v] < 0 || parent[v] >= n) {
			return nil, fmt.Errorf("%w: parent[%d]=%d", ErrNotATree, v, parent[v])
		}
	}

	// 2. Child lists.
	children := Children(parent)

	// 3. Iterative traversal.
	var (
		order   = make([]int, 0, n)
		visited = make([]bool, n)
		stack   = make([]int, 0, n)
		i       int
		kids    []int
	)
	stack = append(stack, root)
	for len(stack) > 0 {
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			return nil, fmt.Errorf("%w: vertex %d reached twice", ErrNotATree, v)
		}
		visited[v] = true
		order = append(order, v)
		if cfg.OnVisit != nil {
			if err := cfg.OnVisit(v); err != nil {
				return nil, err
			}
		}
		kids = children[v]
		for i = len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}

	// 4. Coverage.
	if len(order) != n {
		return nil, fmt.Errorf("%w: %d of %d vertices reachable from %d", ErrNotATree, len(order), n, root)
	}

	return order, nil
}
