package remote

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	a, err := Dial(url)
	require.NoError(t, err)
	defer a.Close()
	b, err := Dial(url)
	require.NoError(t, err)
	defer b.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, a.Send("preset Top"))
	line, err := b.Receive()
	require.NoError(t, err)
	assert.Equal(t, "preset Top", line)

	require.NoError(t, b.Send("tour"))
	line, err = a.Receive()
	require.NoError(t, err)
	assert.Equal(t, "tour", line, "sender must not receive its own message")
}

func TestHub_Disconnect(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	a, err := Dial(url)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, a.Close())
	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)
}
