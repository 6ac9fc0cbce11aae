package fest

import "testing"

type testSession map[string]any

func (session testSession) Get(key string) any {
	return session[key]
}

func (session testSession) ID() string {
	id, _ := session["id"].(string)
	return id
}

func TestItemName(t *testing.T) {
	item := &Item{index: 12, name: "Pale Ale"}
	if item.Name() != "Pale Ale" {
		t.Errorf("Expected 'Pale Ale', got '%s'", item.Name())
	}

	session := testSession{ModeAnonymous: true}
	item.UseSession(session)
	if item.Name() != "#12" {
		t.Errorf("Expected '#12', got '%s'", item.Name())
	}

	session[ModeAnonymous] = false
	if item.Name() != "Pale Ale" {
		t.Errorf("Expected 'Pale Ale', got '%s'", item.Name())
	}
}

func TestItemRangeAsArray(t *testing.T) {
	item := &Item{}
	if item.RangeAsArray() != [2]int{1, 10} {
		t.Errorf("Expected [1 10], got %v", item.RangeAsArray())
	}
}

func TestItemVotesIsCached(t *testing.T) {
	item := &Item{}
	if item.Votes() != item.Votes() {
		t.Error("Expected the same Votes instance")
	}
	if item.Votes().Loaded() {
		t.Error("Expected votes not to be loaded")
	}
}
