package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/arenalabs/arena-store/internal/domain/error"
)

func TestValidateDepositAmount(t *testing.T) {
	assert.NoError(t, ValidateDepositAmount(DepositMinPaise))
	assert.NoError(t, ValidateDepositAmount(DepositMaxPaise))
	assert.NoError(t, ValidateDepositAmount(50000))

	assert.ErrorIs(t, ValidateDepositAmount(DepositMinPaise-1), errs.ErrAmountOutOfRange)
	assert.ErrorIs(t, ValidateDepositAmount(DepositMaxPaise+1), errs.ErrAmountOutOfRange)
	assert.ErrorIs(t, ValidateDepositAmount(0), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateDepositAmount(-100), errs.ErrInvalidAmount)
}

func TestValidateAdminCreditAmount(t *testing.T) {
	assert.NoError(t, ValidateAdminCreditAmount(AdminCreditMinPaise))
	assert.NoError(t, ValidateAdminCreditAmount(AdminCreditMaxPaise))

	assert.ErrorIs(t, ValidateAdminCreditAmount(AdminCreditMinPaise-1), errs.ErrAmountOutOfRange)
	assert.ErrorIs(t, ValidateAdminCreditAmount(AdminCreditMaxPaise+1), errs.ErrAmountOutOfRange)
}

func TestNormalizePage(t *testing.T) {
	testCases := []struct {
		name           string
		limit          int
		offset         int
		expectedLimit  int
		expectedOffset int
	}{
		{name: "defaults applied", limit: 0, offset: 0, expectedLimit: DefaultPageLimit, expectedOffset: 0},
		{name: "negative limit", limit: -1, offset: 0, expectedLimit: DefaultPageLimit, expectedOffset: 0},
		{name: "limit capped", limit: 1000, offset: 40, expectedLimit: MaxPageLimit, expectedOffset: 40},
		{name: "negative offset clamped", limit: 20, offset: -10, expectedLimit: 20, expectedOffset: 0},
		{name: "valid page untouched", limit: 50, offset: 100, expectedLimit: 50, expectedOffset: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := NormalizePage(tc.limit, tc.offset)
			assert.Equal(t, tc.expectedLimit, limit)
			assert.Equal(t, tc.expectedOffset, offset)
		})
	}
}
