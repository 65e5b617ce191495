package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/santamartha/hrportal/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ResultOK},
		{apperrors.ErrAlreadyEnrolled, ResultConflict},
		{apperrors.ErrCourseNotFound, ResultNotFound},
		{fmt.Errorf("%w: titulo is required", apperrors.ErrValidationFailed), ResultInvalid},
		{apperrors.ErrInvalidCredentials, ResultUnauthorized},
		{errors.New("db down"), ResultError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Result(tt.err))
	}
}

func TestCounterIncrements(t *testing.T) {
	before := testutil.ToFloat64(EnrollmentsTotal.WithLabelValues(ResultConflict))
	EnrollmentsTotal.WithLabelValues(Result(apperrors.ErrAlreadyEnrolled)).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(EnrollmentsTotal.WithLabelValues(ResultConflict)))
}
