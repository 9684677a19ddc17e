package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier_Classify(t *testing.T) {
	classifier := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{
			name:     "postgres duplicate key",
			err:      errors.New(`duplicate key value violates unique constraint "idx_wallet_transactions_deposit_payment_id"`),
			expected: DuplicateKeyError,
		},
		{
			name:     "sqlite unique constraint",
			err:      errors.New("UNIQUE constraint failed: purchases.user_id"),
			expected: DuplicateKeyError,
		},
		{
			name:     "deadlock",
			err:      errors.New("deadlock detected"),
			expected: LockError,
		},
		{
			name:     "serialization failure",
			err:      errors.New("could not serialize access due to concurrent update"),
			expected: LockError,
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			expected: TransientError,
		},
		{
			name:     "foreign key violation",
			err:      errors.New(`insert or update on table "wallets" violates foreign key constraint`),
			expected: ConstraintError,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "unrelated error",
			err:      errors.New("something else entirely"),
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.Classify(tc.err))
		})
	}
}

func TestErrorClassifier_IsCheckViolation(t *testing.T) {
	classifier := NewErrorClassifier()

	assert.True(t, classifier.IsCheckViolation(
		errors.New(`new row for relation "wallets" violates check constraint "chk_wallets_balance_paise"`)))
	assert.False(t, classifier.IsCheckViolation(errors.New("duplicate key value")))
	assert.False(t, classifier.IsCheckViolation(nil))
}
