package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quickbite/quickbite/internal/services"
)

func TestSignal_NotifyReachesAllSubscribers(t *testing.T) {
	signal := services.NewSignal()

	var first, second int
	cancelFirst := signal.Subscribe(func() { first++ })
	defer cancelFirst()
	cancelSecond := signal.Subscribe(func() { second++ })
	defer cancelSecond()

	signal.Notify()
	signal.Notify()

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestSignal_CancelStopsDelivery(t *testing.T) {
	signal := services.NewSignal()

	var count int
	cancel := signal.Subscribe(func() { count++ })

	signal.Notify()
	cancel()
	signal.Notify()

	assert.Equal(t, 1, count)
}

func TestSignal_SubscribeDuringNotifyDoesNotDeadlock(t *testing.T) {
	signal := services.NewSignal()

	var nested bool
	signal.Subscribe(func() {
		signal.Subscribe(func() { nested = true })
	})

	signal.Notify()
	signal.Notify()

	assert.True(t, nested)
}
