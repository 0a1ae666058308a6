package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mkarenzi/ikimina/internal/repo"
)

func TestNew(t *testing.T) {
	repos := repo.New(nil, nil)

	services := New(repos, nil, nil, 24*time.Hour)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.GroupService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.PayoutService)
	assert.NotNil(t, services.ReportService)
}
