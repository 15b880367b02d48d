package fsm

import "fmt"

// NodeState is both a Generic State — it has an id, name, and
// transitionable-from set, and participates in its parent machine's
// transition evaluation — and a State Machine in its own right: it
// owns child states and ticks whichever one is active. The original
// this is grounded on inherits both GenericState and StateMachine; Go
// has no multiple inheritance, so NodeState embeds a BaseState plus a
// child StateMachine instead.
type NodeState[O Orientable] struct {
	BaseState[O]
	children *StateMachine[O]
}

// NewNodeState builds a node state with its own empty child machine;
// install children with AddChild before SetInitialChild.
func NewNodeState[O Orientable](id int, name string, transitionableFrom StateMarker) *NodeState[O] {
	return &NodeState[O]{
		BaseState: NewBaseState[O](id, name, transitionableFrom),
		children:  NewStateMachine[O](name),
	}
}

// AddChild installs state in this node's own child machine.
func (n *NodeState[O]) AddChild(state State[O]) {
	n.children.AddState(state)
}

// SetInitialChild makes the child registered under id active, without
// running its Enter hook.
func (n *NodeState[O]) SetInitialChild(id int) {
	n.children.SetInitialState(id)
}

// CurrentChild returns the node's currently active child state, or nil
// before SetInitialChild has been called.
func (n *NodeState[O]) CurrentChild() State[O] {
	return n.children.Current()
}

// Update first runs the node's own Generic State update hook
// (BaseState's default always returns true unless the embedding leaf
// overrides it), then delegates to the child machine's update, which
// recursively ticks whichever child state is active. This overrides
// BaseState.Update rather than being promoted from it.
func (n *NodeState[O]) Update(owner O, framesInState uint32) bool {
	if !n.BaseState.Update(owner, framesInState) {
		return false
	}
	return n.children.Update(owner)
}

// ChainName walks the active-child chain, building a
// "NodeName (id) -> ChildName (id) -> ..." path. StateMachine.Name
// calls into this when its current state is itself a NodeState.
func (n *NodeState[O]) ChainName() string {
	current := n.children.Current()
	if current == nil {
		return fmt.Sprintf("%s (%d)", n.Name(), n.ID())
	}
	if chained, ok := current.(interface{ ChainName() string }); ok {
		return fmt.Sprintf("%s (%d) -> %s", n.Name(), n.ID(), chained.ChainName())
	}
	return fmt.Sprintf("%s (%d) -> %s (%d)", n.Name(), n.ID(), current.Name(), current.ID())
}
