package workspace

import (
	"testing"

	"github.com/billingbricks/app/internal/models"
)

func seedClients() []models.Client {
	return []models.Client{
		{ID: "c1", Name: "Alpha"},
		{ID: "c2", Name: "Beta"},
		{ID: "c3", Name: "Gamma"},
	}
}

func TestNewCopiesSeed(t *testing.T) {
	seed := seedClients()
	c := New(seed)
	seed[0].Name = "mutated"
	if got := c.List()[0].Name; got != "Alpha" {
		t.Fatalf("collection shares memory with seed slice: %q", got)
	}
}

func TestPrependPutsNewRecordFirst(t *testing.T) {
	c := New(seedClients())
	c.Prepend(models.Client{ID: "c9", Name: "New"})
	items := c.List()
	if items[0].ID != "c9" {
		t.Fatalf("new record should be first, got %s", items[0].ID)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 records, got %d", len(items))
	}
}

func TestReplaceKeepsPosition(t *testing.T) {
	c := New(seedClients())
	if !c.Replace(models.Client{ID: "c2", Name: "Beta v2"}) {
		t.Fatal("replace reported no match")
	}
	items := c.List()
	if items[1].ID != "c2" || items[1].Name != "Beta v2" {
		t.Fatalf("record not replaced in place: %+v", items[1])
	}
	if c.Replace(models.Client{ID: "missing"}) {
		t.Fatal("replace of unknown id should report false")
	}
}

func TestRemoveDeletesExactlyOne(t *testing.T) {
	c := New(seedClients())
	if !c.Remove("c2") {
		t.Fatal("remove reported no match")
	}
	items := c.List()
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if items[0].ID != "c1" || items[1].ID != "c3" {
		t.Fatalf("surviving records changed order or content: %+v", items)
	}
	if c.Remove("c2") {
		t.Fatal("second remove of same id should report false")
	}
}

func TestGetAndHas(t *testing.T) {
	c := New(seedClients())
	got, ok := c.Get("c3")
	if !ok || got.Name != "Gamma" {
		t.Fatalf("get c3 = %+v, %v", got, ok)
	}
	if c.Has("nope") {
		t.Fatal("has should be false for unknown id")
	}
}

func TestListReturnsCopy(t *testing.T) {
	c := New(seedClients())
	items := c.List()
	items[0].Name = "tampered"
	if c.List()[0].Name != "Alpha" {
		t.Fatal("List must return a copy, not internal state")
	}
}
