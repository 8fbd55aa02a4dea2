package raceresults_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/raceresults"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := raceresults.Errorf(raceresults.ENOTFOUND, "page for year %d not found", 2010)

	assert.Equal(t, raceresults.ENOTFOUND, raceresults.ErrorCode(err))
	assert.Equal(t, "page for year 2010 not found", raceresults.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, raceresults.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, raceresults.EINTERNAL, raceresults.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, raceresults.ErrorMessage(nil))
}
