package fest

import (
	"strconv"

	"github.com/evantbyrne/beerfest"
	"github.com/evantbyrne/beerfest/forms"
)

// VoteForm builds the voting form for item. A session that already voted sees its score.
func VoteForm(item *Item, session Session) *beerfest.Form {
	score := forms.Range("score", "Score").SetRequired(true)
	if session != nil && item.Votes().Loaded() {
		if current, ok := item.Votes().ScoreBy(session.ID()); ok {
			score.SetValue(strconv.Itoa(current))
		}
	}
	return beerfest.NewForm("/items/"+item.Slug(),
		forms.Hidden("item").SetValue(item.Slug()),
		score,
		forms.Submit("vote", "Vote"),
	)
}
