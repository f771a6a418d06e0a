package autodiff

// TopoSort returns every node reachable from root, each exactly once, with
// every node placed after all of its operands. root is always last.
//
// The traversal is an iterative depth-first post-order. Visited slots are
// tracked in a bitmap indexed by handle, so the cost is linear in the size
// of the subgraph. TopoSort returns nil for an invalid root.
func (g *Graph) TopoSort(root Value) []Value {
	if !g.Valid(root) {
		return nil
	}

	// Handles never exceed root, so root+1 slots cover the reachable set.
	visited := make([]bool, int(root)+1)
	order := make([]Value, 0, 16)

	type frame struct {
		v    Value
		next uint8 // index of the next operand to descend into
	}
	stack := []frame{{v: root}}
	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := &g.nodes[top.v]
		if top.next < n.nargs {
			child := n.args[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{v: child})
			}
			continue
		}
		order = append(order, top.v)
		stack = stack[:len(stack)-1]
	}
	return order
}
