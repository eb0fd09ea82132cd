package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifyCode_Timing(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	code := &VerifyCode{CreatedAt: created}

	assert.True(t, code.TooSoonToResend(created.Add(59*time.Second)))
	assert.False(t, code.TooSoonToResend(created.Add(60*time.Second)))

	assert.Equal(t, 60, code.RetryAfter(created))
	assert.Equal(t, 1, code.RetryAfter(created.Add(59500*time.Millisecond)))
	assert.Equal(t, 0, code.RetryAfter(created.Add(2*time.Minute)))

	assert.False(t, code.IsExpired(created.Add(5*time.Minute), 5*time.Minute))
	assert.True(t, code.IsExpired(created.Add(5*time.Minute+time.Second), 5*time.Minute))
}
