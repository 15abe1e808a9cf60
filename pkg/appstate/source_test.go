package appstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTarget_DispatchOrderAndRemove(t *testing.T) {
	var target EventTarget
	var order []string

	removeA := target.Add(func() { order = append(order, "a") })
	target.Add(func() { order = append(order, "b") })
	target.Add(func() { order = append(order, "c") })
	assert.Equal(t, 3, target.Len())

	target.Dispatch()
	assert.Equal(t, []string{"a", "b", "c"}, order)

	removeA()
	removeA()
	assert.Equal(t, 2, target.Len())

	order = nil
	target.Dispatch()
	assert.Equal(t, []string{"b", "c"}, order)
}

func TestEventTarget_AddDuringDispatchWaitsForNextDispatch(t *testing.T) {
	var target EventTarget
	calls := 0

	target.Add(func() {
		target.Add(func() { calls++ })
	})

	target.Dispatch()
	assert.Zero(t, calls)

	target.Dispatch()
	assert.Equal(t, 1, calls)
}
