package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fleetops/car_rental_app/internal/core/domain"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindEntryByID retrieves a journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntriesByIDs retrieves multiple entries keyed by entry ID.
	FindEntriesByIDs(ctx context.Context, entryIDs []string) (map[string]domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of one entry in insertion order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntries retrieves all journal entries, newest first.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// ListLinesByAccountID retrieves every line touching the account, ordered
	// by entry date then line insertion order.
	ListLinesByAccountID(ctx context.Context, accountID string) ([]domain.JournalLine, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveEntry persists an entry and its lines atomically in its own transaction.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// SaveEntryInTx persists an entry and its lines within the given transaction.
	SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalLine) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction management.
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
