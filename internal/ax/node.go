package ax

// Node is an opaque handle to one element of the host UI graph. Handles are
// created and owned by the Provider; two handles are the same element iff
// they compare equal. Value-equal elements reached through different handles
// are distinct nodes and are collapsed downstream by deduplication, never
// here.
type Node any

// Point is a node position in screen coordinates.
type Point struct {
	X float64
	Y float64
}

// Size is a node extent in points.
type Size struct {
	Width  float64
	Height float64
}

// Attribute kinds understood by Provider.Attribute. Providers backed by the
// macOS accessibility API map these 1:1 onto AX attribute names; other
// backings translate as best they can and report absence for the rest.
const (
	RoleAttribute            = "AXRole"
	RoleDescriptionAttribute = "AXRoleDescription"
	ValueAttribute           = "AXValue"
	TitleAttribute           = "AXTitle"
	DescriptionAttribute     = "AXDescription"
	LabelAttribute           = "AXLabel"
	HelpAttribute            = "AXHelp"
	DocumentAttribute        = "AXDocument"
	URLAttribute             = "AXURL"
	PlaceholderAttribute     = "AXPlaceholderValue"
)

// Roles the engine itself needs to recognise. Providers may report any role
// string; unrecognised ones pass through untouched.
const (
	RoleUnknown    = "Unknown"
	RoleWindow     = "AXWindow"
	RoleToolbar    = "AXToolbar"
	RoleTextField  = "AXTextField"
	RoleWebArea    = "AXWebArea"
	RoleButton     = "AXButton"
	RoleLink       = "AXLink"
	RoleStaticText = "AXStaticText"
	RoleGroup      = "AXGroup"
)

// Target identifies the application whose UI graph is being traversed.
// Resolution from a user-supplied identifier to a Target happens outside the
// engine; a Target with no resolvable root node means ErrTargetNotFound.
type Target struct {
	PID      int
	Name     string
	BundleID string
}
