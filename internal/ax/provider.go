package ax

// Provider supplies the engine's view of the host UI graph. Implementations
// wrap a platform binding (the macOS AX API, a DOM snapshot, a test fake).
//
// All lookups are best effort: a false second return means the attribute is
// unsupported or carries no value, and the engine treats both the same way.
// Implementations must not panic on foreign or stale handles.
type Provider interface {
	// Role returns the node's role string, e.g. "AXButton".
	Role(n Node) (string, bool)
	// Attribute returns the string value of one attribute kind.
	Attribute(n Node, kind string) (string, bool)
	// Position returns the node's top-left corner in screen coordinates.
	Position(n Node) (Point, bool)
	// Size returns the node's extent.
	Size(n Node) (Size, bool)
	// Children returns the node's ordinary child collection, possibly empty.
	Children(n Node) []Node
	// Windows returns the window collection of an application node.
	Windows(n Node) []Node
	// MainWindow returns the application's distinguished main window.
	MainWindow(n Node) (Node, bool)
	// Parent returns the node's parent, if any.
	Parent(n Node) (Node, bool)
}
