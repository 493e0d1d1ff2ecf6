//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"estatebook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark_SentinelMatchesWithStandardErrorsIs(t *testing.T) {
	sentinel := errs.New("invalid booking request")
	cause := errs.New("check-out before check-in")

	err := errs.Mark(cause, sentinel)

	assert.True(t, errors.Is(err, sentinel), "mark must be visible to errors.Is")
	assert.True(t, errors.Is(err, cause), "cause must stay in the chain")
	assert.Equal(t, cause.Error(), err.Error(), "message comes from the cause")
}

func TestMark_NilCauseReturnsMark(t *testing.T) {
	sentinel := errs.New("persistence failure")
	assert.Same(t, sentinel, errs.Mark(nil, sentinel))
}

func TestMark_SurvivesFurtherWrapping(t *testing.T) {
	sentinel := errs.New("invalid status transition")
	err := fmt.Errorf("applying transition: %w", errs.Mark(errs.New("already cancelled"), sentinel))

	assert.True(t, errors.Is(err, sentinel))
}

func TestMark_VerboseFormatKeepsCauseAndMark(t *testing.T) {
	sentinel := errs.New("date range conflict")
	err := errs.Mark(errs.New("exclusion violation"), sentinel)

	rendered := fmt.Sprintf("%+v", err)
	assert.Contains(t, rendered, "exclusion violation")
	assert.Contains(t, rendered, "date range conflict")
}
