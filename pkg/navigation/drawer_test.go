package navigation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-crmkit/pkg/navigation"
)

var companies = navigation.ObjectMetadataItem{
	ID:           "obj-company",
	NameSingular: "company",
	NamePlural:   "companies",
	LabelPlural:  "Companies",
	Icon:         "IconBuildingSkyscraper",
	IsActive:     true,
}

var allViews = []navigation.View{
	{ID: "v-all", ObjectMetadataID: "obj-company", Name: "All", Icon: "IconList", Position: 2},
	{ID: "v-people", ObjectMetadataID: "obj-person", Name: "People", Position: 0},
	{ID: "v-mine", ObjectMetadataID: "obj-company", Name: "Mine", Icon: "IconUser", Position: 0},
	{ID: "v-big", ObjectMetadataID: "obj-company", Name: "Big deals", Position: 1},
}

func TestDrawerItemFor_InactiveHasNoSubItems(t *testing.T) {
	item := navigation.DrawerItemFor(companies, allViews, "/objects/people", "")

	if item.Active {
		t.Fatalf("expected item to be inactive")
	}
	if item.Path != "/objects/companies?view=v-all" {
		t.Fatalf("expected first view in given order, got %q", item.Path)
	}
	if item.IsGroup() {
		t.Fatalf("expected no sub items, got %#v", item.SubItems)
	}
}

func TestDrawerItemFor_ActiveListsSortedViews(t *testing.T) {
	item := navigation.DrawerItemFor(companies, allViews, "/objects/companies", "v-big")

	if !item.Active || item.ViewID != "v-big" {
		t.Fatalf("unexpected item: %#v", item)
	}

	want := []navigation.SubItem{
		{ViewID: "v-mine", Label: "Mine", Icon: "IconUser", Path: "/objects/companies?view=v-mine", State: navigation.SubItemIntermediateBeforeSelected},
		{ViewID: "v-big", Label: "Big deals", Path: "/objects/companies?view=v-big", Active: true, State: navigation.SubItemIntermediateSelected},
		{ViewID: "v-all", Label: "All", Icon: "IconList", Path: "/objects/companies?view=v-all", State: navigation.SubItemLastNotSelected},
	}
	if diff := cmp.Diff(want, item.SubItems); diff != "" {
		t.Fatalf("sub items mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawerItemFor_RecordPageIsActive(t *testing.T) {
	item := navigation.DrawerItemFor(companies, allViews, "/object/company/42/", "")
	if !item.Active {
		t.Fatalf("expected record page to activate the item")
	}
}

func TestDrawerItemFor_SingleViewIsNotAGroup(t *testing.T) {
	views := []navigation.View{{ID: "only", ObjectMetadataID: "obj-company", Name: "All"}}
	item := navigation.DrawerItemFor(companies, views, "/objects/companies", "")
	if item.IsGroup() {
		t.Fatalf("expected a single view not to produce sub items")
	}
	if item.Path != "/objects/companies?view=only" {
		t.Fatalf("unexpected path: %q", item.Path)
	}
}

func TestDrawerItemFor_NoViews(t *testing.T) {
	item := navigation.DrawerItemFor(companies, nil, "/objects/companies", "")
	if item.Path != "/objects/companies" || item.ViewID != "" {
		t.Fatalf("unexpected item: %#v", item)
	}
}

func TestDrawerSection_FiltersAndSorts(t *testing.T) {
	objects := []navigation.ObjectMetadataItem{
		{ID: "p", NamePlural: "people", LabelPlural: "People", IsActive: true},
		companies,
		{ID: "r", NamePlural: "stripeCustomers", LabelPlural: "Stripe customers", IsActive: true, IsRemote: true},
		{ID: "s", NamePlural: "blocklists", LabelPlural: "Blocklists", IsActive: true, IsSystem: true},
		{ID: "i", NamePlural: "archived", LabelPlural: "Archived", IsActive: false},
	}

	items := navigation.DrawerSection(objects, false, allViews, "/objects/people", map[string]string{"obj-company": "v-mine"})
	var labels []string
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	if diff := cmp.Diff([]string{"Companies", "People"}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if items[0].ViewID != "v-mine" {
		t.Fatalf("expected last visited view to be used, got %q", items[0].ViewID)
	}

	remote := navigation.DrawerSection(objects, true, allViews, "", nil)
	if len(remote) != 1 || remote[0].ObjectID != "r" {
		t.Fatalf("unexpected remote section: %#v", remote)
	}
}

func TestObjectPath_EscapesViewID(t *testing.T) {
	if got := navigation.ObjectPath("companies", "a b"); got != "/objects/companies?view=a+b" {
		t.Fatalf("unexpected path: %q", got)
	}
}
