package navigation

// Navigator tracks the current view and the path that led to it
type Navigator interface {
	CurrentView() View
	Push(view View)
	Back() View
	Reset()
}

type navigator struct {
	stack []View
}

// NewNavigator creates a navigator starting at the projects view
func NewNavigator() Navigator {
	return &navigator{
		stack: []View{ViewProjects},
	}
}

func (n *navigator) CurrentView() View {
	return n.stack[len(n.stack)-1]
}

// Push enters a deeper view
func (n *navigator) Push(view View) {
	n.stack = append(n.stack, view)
}

// Back leaves the current view and returns the one now active; the
// root projects view is never popped
func (n *navigator) Back() View {
	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
	}

	return n.CurrentView()
}

// Reset returns to the root view
func (n *navigator) Reset() {
	n.stack = n.stack[:1]
}
