package fest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/evantbyrne/beerfest"
	"github.com/sqids/sqids-go"
)

const (
	TableItem = "item"
	TableVote = "vote"

	slugAlphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
	slugMinLength = 6
)

// ItemStore loads and creates items. Items get a public slug derived from their id so
// the id itself never appears in URLs.
type ItemStore struct {
	DB      *sql.DB
	Dialect beerfest.Dialect

	sqids *sqids.Sqids
}

// NewItemStore falls back to the registered database and default dialect when db or
// dialect is nil. The salt shuffles the slug alphabet.
func NewItemStore(db *sql.DB, dialect beerfest.Dialect, salt string) (*ItemStore, error) {
	if db == nil {
		db = beerfest.Database()
	}
	if dialect == nil {
		dialect = beerfest.DefaultDialect()
	}
	if dialect == nil {
		return nil, errors.New("fest: no dialect registered")
	}
	s, err := sqids.New(sqids.Options{
		Alphabet:  shuffleAlphabet(slugAlphabet, salt),
		MinLength: slugMinLength,
	})
	if err != nil {
		return nil, fmt.Errorf("fest: slug encoder: %w", err)
	}
	return &ItemStore{DB: db, Dialect: dialect, sqids: s}, nil
}

// Create inserts an item and assigns its slug in the same transaction.
func (store *ItemStore) Create(ctx context.Context, index int64, name string) (*Item, error) {
	if store.DB == nil {
		return nil, beerfest.UseDatabaseError{}
	}
	d := store.Dialect

	tx, err := store.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("fest: create item: %w", err)
	}
	defer tx.Rollback()

	var id int64
	insert := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (%s, %s) RETURNING %s",
		d.QuoteIdentifier(TableItem),
		d.QuoteIdentifier(ColumnIndex), d.QuoteIdentifier(ColumnName),
		d.Param(1), d.Param(2),
		d.QuoteIdentifier(ColumnID))
	if err := tx.QueryRowContext(ctx, insert, index, name).Scan(&id); err != nil {
		return nil, fmt.Errorf("fest: create item: %w", err)
	}

	slug, err := store.Encode(id)
	if err != nil {
		return nil, err
	}
	update := fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s = %s",
		d.QuoteIdentifier(TableItem),
		d.QuoteIdentifier(ColumnSlug), d.Param(1),
		d.QuoteIdentifier(ColumnID), d.Param(2))
	if _, err := tx.ExecContext(ctx, update, slug, id); err != nil {
		return nil, fmt.Errorf("fest: create item: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("fest: create item: %w", err)
	}

	return &Item{id: id, index: index, name: name, slug: slug, store: store}, nil
}

// CreateSchema creates the item and vote tables. Safe to call more than once.
func (store *ItemStore) CreateSchema(ctx context.Context) error {
	if store.DB == nil {
		return beerfest.UseDatabaseError{}
	}
	for _, statement := range Schema(store.Dialect) {
		if _, err := store.DB.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("fest: create schema: %w", err)
		}
	}
	return nil
}

// Decode returns the id behind a slug. Only the canonical encoding of a single id is accepted.
func (store *ItemStore) Decode(slug string) (int64, bool) {
	numbers := store.sqids.Decode(slug)
	if len(numbers) != 1 {
		return 0, false
	}
	canonical, err := store.sqids.Encode(numbers)
	if err != nil || canonical != slug {
		return 0, false
	}
	return int64(numbers[0]), true
}

func (store *ItemStore) Encode(id int64) (string, error) {
	if id < 0 {
		return "", fmt.Errorf("fest: cannot encode negative id %d", id)
	}
	slug, err := store.sqids.Encode([]uint64{uint64(id)})
	if err != nil {
		return "", fmt.Errorf("fest: encode slug: %w", err)
	}
	return slug, nil
}

func (store *ItemStore) Find(ctx context.Context, id int64) (*Item, error) {
	record, err := beerfest.FindRecord(ctx, store.DB, store.Dialect, TableItem, ColumnID, id)
	if err != nil {
		return nil, err
	}
	return itemFromRecord(store, record), nil
}

func (store *ItemStore) FindBySlug(ctx context.Context, slug string) (*Item, error) {
	if _, ok := store.Decode(slug); !ok {
		return nil, beerfest.ErrorNotFound{}
	}
	record, err := beerfest.FindRecord(ctx, store.DB, store.Dialect, TableItem, ColumnSlug, slug)
	if err != nil {
		return nil, err
	}
	return itemFromRecord(store, record), nil
}

// List returns every item ordered by index.
func (store *ItemStore) List(ctx context.Context) ([]*Item, error) {
	records, err := beerfest.FindRecords(ctx, store.DB, store.Dialect, TableItem, ColumnIndex, ColumnID)
	if err != nil {
		return nil, err
	}
	items := make([]*Item, 0, len(records))
	for _, record := range records {
		items = append(items, itemFromRecord(store, record))
	}
	return items, nil
}

// Schema returns the DDL statements for the dialect.
func Schema(d beerfest.Dialect) []string {
	return []string{
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s %s, %s INTEGER NOT NULL, %s TEXT NOT NULL, %s TEXT UNIQUE)",
			d.QuoteIdentifier(TableItem),
			d.QuoteIdentifier(ColumnID), d.SerialPrimaryKey(),
			d.QuoteIdentifier(ColumnIndex),
			d.QuoteIdentifier(ColumnName),
			d.QuoteIdentifier(ColumnSlug)),
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s %s, %s INTEGER NOT NULL REFERENCES %s (%s) ON DELETE CASCADE, %s TEXT NOT NULL, %s INTEGER NOT NULL, %s TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP, UNIQUE (%s, %s))",
			d.QuoteIdentifier(TableVote),
			d.QuoteIdentifier("id"), d.SerialPrimaryKey(),
			d.QuoteIdentifier("item_id"), d.QuoteIdentifier(TableItem), d.QuoteIdentifier(ColumnID),
			d.QuoteIdentifier("session_id"),
			d.QuoteIdentifier("score"),
			d.QuoteIdentifier("created_at"),
			d.QuoteIdentifier("item_id"), d.QuoteIdentifier("session_id")),
	}
}

// shuffleAlphabet deterministically reorders alphabet using salt.
func shuffleAlphabet(alphabet string, salt string) string {
	if salt == "" {
		return alphabet
	}
	h := fnv.New64a()
	h.Write([]byte(salt))
	state := h.Sum64()

	runes := []rune(alphabet)
	for i := len(runes) - 1; i > 0; i-- {
		state = state*6364136223846793005 + 1442695040888963407
		j := int(state>>33) % (i + 1)
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
