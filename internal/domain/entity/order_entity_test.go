package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatusChange(t *testing.T) {
	assert.True(t, ValidStatusChange(OrderPending, OrderCompleted))
	assert.True(t, ValidStatusChange(OrderPending, OrderCancelled))

	assert.False(t, ValidStatusChange(OrderPending, OrderPending))
	assert.False(t, ValidStatusChange(OrderCompleted, OrderCancelled))
	assert.False(t, ValidStatusChange(OrderCancelled, OrderPending))
	assert.False(t, ValidStatusChange(OrderCompleted, OrderPending))
	assert.False(t, ValidStatusChange(OrderPending, "shipped"))
}
