package navigation

import (
	"net/url"
	"sort"
	"strings"
)

const objectsRoot = "/objects/"

// ObjectMetadataItem is the subset of a record type definition the drawer
// needs.
type ObjectMetadataItem struct {
	ID            string
	NameSingular  string
	NamePlural    string
	LabelPlural   string
	Icon          string
	IsRemote      bool
	IsActive      bool
	IsSystem      bool
	DisplayHidden bool
}

// View is a saved view of an object's records.
type View struct {
	ID               string
	ObjectMetadataID string
	Name             string
	Icon             string
	Position         float64
}

// DrawerItem is the top level drawer entry for an object.
type DrawerItem struct {
	ObjectID string
	Label    string
	Icon     string
	Path     string
	Active   bool
	ViewID   string
	SubItems []SubItem
}

// IsGroup reports whether sub items are displayed under the item.
func (d DrawerItem) IsGroup() bool {
	return len(d.SubItems) > 0
}

// SubItem is one view listed under an active drawer item.
type SubItem struct {
	ViewID string
	Label  string
	Icon   string
	Path   string
	Active bool
	State  SubItemState
}

// ObjectViews returns the views that belong to objectID, preserving order.
func ObjectViews(objectID string, views []View) []View {
	out := make([]View, 0, len(views))
	for _, view := range views {
		if view.ObjectMetadataID == objectID {
			out = append(out, view)
		}
	}
	return out
}

// ObjectPath returns the list route of an object, optionally pinned to a view.
func ObjectPath(namePlural, viewID string) string {
	path := objectsRoot + namePlural
	if viewID == "" {
		return path
	}
	return path + "?view=" + url.QueryEscape(viewID)
}

// IsObjectActive reports whether currentPath shows the object's list or one
// of its records.
func IsObjectActive(object ObjectMetadataItem, currentPath string) bool {
	if currentPath == objectsRoot+object.NamePlural {
		return true
	}
	return object.NameSingular != "" && strings.Contains(currentPath, "object/"+object.NameSingular+"/")
}

// DrawerItemFor derives the drawer entry of object. views may contain views of
// other objects. The target view is lastVisitedViewID when set, otherwise the
// first view of the object in the order given.
func DrawerItemFor(object ObjectMetadataItem, views []View, currentPath, lastVisitedViewID string) DrawerItem {
	objectViews := ObjectViews(object.ID, views)

	viewID := lastVisitedViewID
	if viewID == "" && len(objectViews) > 0 {
		viewID = objectViews[0].ID
	}

	item := DrawerItem{
		ObjectID: object.ID,
		Label:    object.LabelPlural,
		Icon:     object.Icon,
		Path:     ObjectPath(object.NamePlural, viewID),
		Active:   IsObjectActive(object, currentPath),
		ViewID:   viewID,
	}

	if !item.Active || len(objectViews) <= 1 {
		return item
	}

	sorted := append([]View(nil), objectViews...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	selected := -1
	for i, view := range sorted {
		if view.ID == viewID {
			selected = i
			break
		}
	}

	item.SubItems = make([]SubItem, 0, len(sorted))
	for i, view := range sorted {
		item.SubItems = append(item.SubItems, SubItem{
			ViewID: view.ID,
			Label:  view.Name,
			Icon:   view.Icon,
			Path:   ObjectPath(object.NamePlural, view.ID),
			Active: view.ID == viewID,
			State:  SubItemAdornment(i, len(sorted), selected),
		})
	}
	return item
}

// DrawerSection groups the drawer items of workspace or remote objects.
func DrawerSection(objects []ObjectMetadataItem, remote bool, views []View, currentPath string, lastVisited map[string]string) []DrawerItem {
	filtered := make([]ObjectMetadataItem, 0, len(objects))
	for _, object := range objects {
		if object.IsRemote != remote || !object.IsActive || object.IsSystem || object.DisplayHidden {
			continue
		}
		filtered = append(filtered, object)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].LabelPlural < filtered[j].LabelPlural
	})

	out := make([]DrawerItem, 0, len(filtered))
	for _, object := range filtered {
		out = append(out, DrawerItemFor(object, views, currentPath, lastVisited[object.ID]))
	}
	return out
}
