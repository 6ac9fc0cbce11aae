// Package fest holds the tasting items, their votes and the pages that collect them.
package fest

import (
	"strconv"

	"github.com/evantbyrne/beerfest"
	"github.com/evantbyrne/beerfest/forms"
)

const (
	ColumnID    = "id"
	ColumnIndex = "item_index"
	ColumnName  = "name"
	ColumnSlug  = "slug"

	// ModeAnonymous is the session key that hides item names behind their index.
	ModeAnonymous = "mode_anonymous"
)

type Session interface {
	Get(key string) any
	ID() string
}

type Item struct {
	id      int64
	index   int64
	name    string
	session Session
	slug    string
	store   *ItemStore
	votes   *Votes
}

func itemFromRecord(store *ItemStore, record *beerfest.Record) *Item {
	return &Item{
		id:    record.Int64(ColumnID),
		index: record.Int64(ColumnIndex),
		name:  record.String(ColumnName),
		slug:  record.String(ColumnSlug),
		store: store,
	}
}

func (item *Item) ID() int64 {
	return item.id
}

func (item *Item) Index() int64 {
	return item.index
}

// Name returns the display name, or "#" and the index when the session is in anonymous mode.
func (item *Item) Name() string {
	if item.session != nil {
		if anonymous, _ := item.session.Get(ModeAnonymous).(bool); anonymous {
			return "#" + strconv.FormatInt(item.index, 10)
		}
	}
	return item.name
}

func (item *Item) RangeAsArray() [2]int {
	return [2]int{forms.RangeMin, forms.RangeMax}
}

func (item *Item) Slug() string {
	return item.slug
}

// UseSession sets the session that decides how the item is displayed.
func (item *Item) UseSession(session Session) *Item {
	item.session = session
	return item
}

// Votes returns the item's votes. The same instance is returned on every call.
func (item *Item) Votes() *Votes {
	if item.votes == nil {
		item.votes = &Votes{item: item}
	}
	return item.votes
}
