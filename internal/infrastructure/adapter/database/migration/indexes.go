package migration

import (
	coreport "github.com/arenalabs/arena-store/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager manages PostgreSQL-specific indexes that GORM tags cannot
// express
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the indexes backing the ledger's idempotency and
// listing queries
func (m *IndexManager) CreateIndexes() error {
	m.logger.Info("Creating PostgreSQL indexes", nil)

	// Deposit idempotency backstop: at most one DEPOSIT entry per gateway
	// payment id, regardless of how many verify calls race. Partial so that
	// purchase entries with an empty payment_id are unaffected.
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_wallet_transactions_deposit_payment_id
		ON wallet_transactions (payment_id)
		WHERE type = 'DEPOSIT' AND payment_id <> ''
	`).Error; err != nil {
		m.logger.Error("Failed to create deposit payment id index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Ledger history pages are always (user, newest first)
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_wallet_transactions_user_created
		ON wallet_transactions (user_id, created_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create ledger history index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("PostgreSQL indexes created", nil)
	return nil
}
