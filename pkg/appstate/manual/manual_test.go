package manual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibility_SetHiddenNotifiesOnChangeOnly(t *testing.T) {
	v := NewVisibility(false)
	calls := 0
	remove := v.OnVisibilityChange(func() { calls++ })

	v.SetHidden(false)
	assert.Zero(t, calls)

	v.SetHidden(true)
	assert.True(t, v.Hidden())
	assert.Equal(t, 1, calls)

	v.Notify()
	assert.Equal(t, 2, calls)

	remove()
	v.SetHidden(false)
	assert.Equal(t, 2, calls)
	assert.Zero(t, v.Subscribers())
}

func TestConnectivity_Transitions(t *testing.T) {
	c := NewConnectivity(true)
	var events []string
	c.OnOnline(func() { events = append(events, "online") })
	c.OnOffline(func() { events = append(events, "offline") })

	c.SetOnline(true)
	c.SetOnline(false)
	c.SetOnline(false)
	c.SetOnline(true)

	assert.Equal(t, []string{"offline", "online"}, events)
	online, supported := c.OnLine()
	assert.True(t, online)
	assert.True(t, supported)
}

func TestConnectivity_Unsupported(t *testing.T) {
	c := NewUnsupportedConnectivity()
	_, supported := c.OnLine()
	assert.False(t, supported)

	var events []string
	c.OnOnline(func() { events = append(events, "online") })
	c.OnOffline(func() { events = append(events, "offline") })

	// Unsupported reads as online, so going online is not a transition.
	c.SetOnline(true)
	assert.Empty(t, events)

	online, supported := c.OnLine()
	assert.True(t, online)
	assert.True(t, supported)
}
