package appstate

// Category identifies which host signal a query or listener targets.
type Category string

// Categories. CategoryApp is derived from the other two.
const (
	CategoryNone         Category = ""
	CategoryVisibility   Category = "visibility"
	CategoryConnectivity Category = "connectivity"
	CategoryApp          Category = "app"
)

// Value is the current value of a Category.
type Value string

// Values per category.
const (
	Visible  Value = "visible"
	Hidden   Value = "hidden"
	Online   Value = "online"
	Offline  Value = "offline"
	Active   Value = "active"
	Inactive Value = "inactive"
)

// Snapshot is a full read of all three categories.
type Snapshot struct {
	Visible Value `json:"visible"`
	Online  Value `json:"online"`
	Active  Value `json:"active"`
}

// Reading is the result of GetState. Value is set when the token resolved to a
// category; otherwise Snapshot holds a full read.
type Reading struct {
	Category Category `json:"category,omitempty"`
	Value    Value    `json:"value,omitempty"`
	Snapshot Snapshot `json:"snapshot"`
}

// IsSnapshot reports whether the reading fell back to a full snapshot.
func (r Reading) IsSnapshot() bool {
	return r.Category == CategoryNone
}

// String returns the single value, or the snapshot in "key=value" form.
func (r Reading) String() string {
	if !r.IsSnapshot() {
		return string(r.Value)
	}
	return "visible=" + string(r.Snapshot.Visible) +
		" online=" + string(r.Snapshot.Online) +
		" active=" + string(r.Snapshot.Active)
}

// ResolveType maps a category name or any of its value aliases to the owning
// category. Unrecognized tokens resolve to CategoryNone.
func ResolveType(token string) Category {
	switch token {
	case "visibility", "visible", "invisible", "hidden":
		return CategoryVisibility
	case "connectivity", "online", "offline":
		return CategoryConnectivity
	case "app", "active", "inactive":
		return CategoryApp
	default:
		return CategoryNone
	}
}

// Aliases returns every token that resolves to c, the category name first.
func Aliases(c Category) []string {
	switch c {
	case CategoryVisibility:
		return []string{"visibility", "visible", "invisible", "hidden"}
	case CategoryConnectivity:
		return []string{"connectivity", "online", "offline"}
	case CategoryApp:
		return []string{"app", "active", "inactive"}
	default:
		return nil
	}
}

// Categories lists the known categories.
func Categories() []Category {
	return []Category{CategoryVisibility, CategoryConnectivity, CategoryApp}
}
