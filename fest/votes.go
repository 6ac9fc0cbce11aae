package fest

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/evantbyrne/beerfest"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce     sync.Once
	validateInstance *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validateInstance = validator.New()
	})
	return validateInstance
}

// Votes is the set of scores cast for one item, one per session.
type Votes struct {
	item     *Item
	loaded   bool
	sessions []string
	scores   map[string]int
}

type VoteSummary struct {
	Count  int     `json:"count"`
	Item   string  `json:"item"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    int     `json:"min"`
}

// Cast records the session's score for the item, replacing an earlier vote by the same session.
func (votes *Votes) Cast(ctx context.Context, sessionID string, score int) error {
	if sessionID == "" {
		return beerfest.ErrorUnauthorized{Message: "A session is required to vote."}
	}
	bounds := votes.item.RangeAsArray()
	rule := "gte=" + strconv.Itoa(bounds[0]) + ",lte=" + strconv.Itoa(bounds[1])
	if err := getValidator().Var(score, rule); err != nil {
		return beerfest.ErrorBadRequest{Message: fmt.Sprintf("Score must be between %d and %d.", bounds[0], bounds[1])}
	}

	store := votes.item.store
	if store == nil || store.DB == nil {
		return beerfest.UseDatabaseError{}
	}
	d := store.Dialect
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s) VALUES (%s, %s, %s, %s) ON CONFLICT (%s, %s) DO UPDATE SET %s = excluded.%s, %s = %s",
		d.QuoteIdentifier(TableVote),
		d.QuoteIdentifier("item_id"), d.QuoteIdentifier("session_id"), d.QuoteIdentifier("score"), d.QuoteIdentifier("created_at"),
		d.Param(1), d.Param(2), d.Param(3), d.Now(),
		d.QuoteIdentifier("item_id"), d.QuoteIdentifier("session_id"),
		d.QuoteIdentifier("score"), d.QuoteIdentifier("score"),
		d.QuoteIdentifier("created_at"), d.Now())
	if _, err := store.DB.ExecContext(ctx, query, votes.item.id, sessionID, score); err != nil {
		return fmt.Errorf("fest: cast vote: %w", err)
	}

	if votes.loaded {
		votes.set(sessionID, score)
	}
	return nil
}

func (votes *Votes) Count() int {
	return len(votes.sessions)
}

// Load reads the item's votes. Calling it again refreshes them.
func (votes *Votes) Load(ctx context.Context) error {
	store := votes.item.store
	if store == nil || store.DB == nil {
		return beerfest.UseDatabaseError{}
	}
	d := store.Dialect
	query := fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = %s ORDER BY %s",
		d.QuoteIdentifier("session_id"), d.QuoteIdentifier("score"),
		d.QuoteIdentifier(TableVote),
		d.QuoteIdentifier("item_id"), d.Param(1),
		d.QuoteIdentifier("id"))
	rows, err := store.DB.QueryContext(ctx, query, votes.item.id)
	if err != nil {
		return fmt.Errorf("fest: load votes: %w", err)
	}
	defer rows.Close()

	votes.sessions = nil
	votes.scores = make(map[string]int)
	for rows.Next() {
		var sessionID string
		var score int
		if err := rows.Scan(&sessionID, &score); err != nil {
			return fmt.Errorf("fest: load votes: %w", err)
		}
		votes.set(sessionID, score)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("fest: load votes: %w", err)
	}
	votes.loaded = true
	return nil
}

func (votes *Votes) Loaded() bool {
	return votes.loaded
}

func (votes *Votes) Mean() float64 {
	scores := votes.Scores()
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return float64(sum) / float64(len(scores))
}

// Median interpolates between the two middle scores of an even count.
func (votes *Votes) Median() float64 {
	scores := votes.Scores()
	if len(scores) == 0 {
		return 0
	}
	slices.Sort(scores)
	middle := len(scores) / 2
	if len(scores)%2 == 1 {
		return float64(scores[middle])
	}
	return float64(scores[middle-1]+scores[middle]) / 2
}

// ScoreBy returns the score cast by the session, if any.
func (votes *Votes) ScoreBy(sessionID string) (int, bool) {
	score, ok := votes.scores[sessionID]
	return score, ok
}

// Scores returns a copy of the loaded scores in the order they were first cast.
func (votes *Votes) Scores() []int {
	scores := make([]int, 0, len(votes.sessions))
	for _, sessionID := range votes.sessions {
		scores = append(scores, votes.scores[sessionID])
	}
	return scores
}

func (votes *Votes) Summary() VoteSummary {
	summary := VoteSummary{
		Count:  votes.Count(),
		Item:   votes.item.Name(),
		Mean:   votes.Mean(),
		Median: votes.Median(),
	}
	if scores := votes.Scores(); len(scores) > 0 {
		summary.Min = slices.Min(scores)
		summary.Max = slices.Max(scores)
	}
	return summary
}

func (votes *Votes) set(sessionID string, score int) {
	if votes.scores == nil {
		votes.scores = make(map[string]int)
	}
	if _, ok := votes.scores[sessionID]; !ok {
		votes.sessions = append(votes.sessions, sessionID)
	}
	votes.scores[sessionID] = score
}
