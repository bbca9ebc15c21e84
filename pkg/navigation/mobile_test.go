package navigation_test

import (
	"testing"

	"github.com/goliatone/go-crmkit/pkg/navigation"
)

func TestMobileBar_ActiveItem(t *testing.T) {
	cases := []struct {
		name string
		bar  navigation.MobileBar
		want navigation.MobileItem
	}{
		{name: "default", bar: navigation.MobileBar{}, want: navigation.MobileItemMain},
		{name: "settings page", bar: navigation.MobileBar{SettingsPage: true}, want: navigation.MobileItemSettings},
		{name: "command menu wins over settings", bar: navigation.MobileBar{SettingsPage: true, CommandMenuOpened: true}, want: navigation.MobileItemSearch},
		{name: "expanded drawer wins", bar: navigation.MobileBar{DrawerExpanded: true, CurrentDrawer: navigation.MobileItemMain, CommandMenuOpened: true}, want: navigation.MobileItemMain},
	}
	for _, tc := range cases {
		if got := tc.bar.ActiveItem(); got != tc.want {
			t.Fatalf("%s: ActiveItem() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestMobileBar_ClickSettingsToggles(t *testing.T) {
	bar := navigation.MobileBar{CommandMenuOpened: true}

	bar = bar.ClickSettings()
	if !bar.DrawerExpanded || bar.CurrentDrawer != navigation.MobileItemSettings || bar.CommandMenuOpened {
		t.Fatalf("expected settings drawer open, got %#v", bar)
	}
	if bar.ActiveItem() != navigation.MobileItemSettings {
		t.Fatalf("expected settings to be active")
	}

	bar = bar.ClickSettings()
	if bar.DrawerExpanded {
		t.Fatalf("expected second click to collapse the drawer, got %#v", bar)
	}

	bar = bar.ClickSettings()
	if !bar.DrawerExpanded {
		t.Fatalf("expected third click to expand again")
	}
}

func TestMobileBar_ClickSearch(t *testing.T) {
	bar := navigation.MobileBar{DrawerExpanded: true, CurrentDrawer: navigation.MobileItemSettings}.ClickSearch()
	if bar.DrawerExpanded || !bar.CommandMenuOpened {
		t.Fatalf("unexpected state: %#v", bar)
	}
	if bar.ActiveItem() != navigation.MobileItemSearch {
		t.Fatalf("expected search to be active")
	}
}

func TestWorkspaceHeader(t *testing.T) {
	var missing *navigation.Workspace
	if title, logo := missing.Header("https://api.example.com"); title != "" || logo != "" {
		t.Fatalf("expected empty header for nil workspace")
	}

	ws := &navigation.Workspace{DisplayName: "Acme", Logo: "workspace-logo/acme.png"}
	title, logo := ws.Header("https://api.example.com/")
	if title != "Acme" || logo != "https://api.example.com/files/workspace-logo/acme.png" {
		t.Fatalf("unexpected header: %q %q", title, logo)
	}

	ws.Logo = "https://cdn.example.com/acme.png"
	if _, logo := ws.Header("https://api.example.com"); logo != "https://cdn.example.com/acme.png" {
		t.Fatalf("expected absolute logo untouched, got %q", logo)
	}
}
