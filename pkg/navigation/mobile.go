package navigation

// MobileItem names an entry of the mobile navigation bar.
type MobileItem string

const (
	MobileItemMain     MobileItem = "main"
	MobileItemSearch   MobileItem = "search"
	MobileItemSettings MobileItem = "settings"
)

// MobileBar holds the state the mobile navigation bar reads and writes.
type MobileBar struct {
	DrawerExpanded    bool
	CurrentDrawer     MobileItem
	CommandMenuOpened bool
	SettingsPage      bool
}

// ActiveItem returns the highlighted entry.
func (b MobileBar) ActiveItem() MobileItem {
	switch {
	case b.DrawerExpanded:
		return b.CurrentDrawer
	case b.CommandMenuOpened:
		return MobileItemSearch
	case b.SettingsPage:
		return MobileItemSettings
	default:
		return MobileItemMain
	}
}

// ClickSearch opens the command menu and collapses the drawer.
func (b MobileBar) ClickSearch() MobileBar {
	b.CommandMenuOpened = true
	b.DrawerExpanded = false
	return b
}

// ClickSettings closes the command menu and toggles the settings drawer. A
// second click on an already expanded settings drawer collapses it.
func (b MobileBar) ClickSettings() MobileBar {
	active := b.ActiveItem()
	b.CommandMenuOpened = false
	b.DrawerExpanded = active != MobileItemSettings || !b.DrawerExpanded
	b.CurrentDrawer = MobileItemSettings
	return b
}

// Workspace is the branding shown in the bar header.
type Workspace struct {
	DisplayName string
	Logo        string
}

// Header returns the title and absolute logo URL for the bar. baseURL is used
// for relative logo paths.
func (w *Workspace) Header(baseURL string) (title, logo string) {
	if w == nil {
		return "", ""
	}
	return w.DisplayName, AbsoluteImageURL(w.Logo, baseURL)
}
