package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/kruto"
	"github.com/reoring/kruto/client"
	"github.com/reoring/kruto/dispatch"
	"github.com/reoring/kruto/types"
)

const (
	date = `{"_": "date", "value": "2024-03-01T10:00:00.000+00:00"}`
	chat = `{"id": 7, "type": "private", "color": 0, "firstName": "Ann", "isScam": false, "isFake": false, "isSupport": false, "isVerified": false}`
	sent = `{"out": true, "id": 99, "date": ` + date + `, "chat": ` + chat + `, "isTopicMessage": false, "text": "ok", "entities": []}`
)

func TestRegister_EchoesTextAndPromptsOtherwise(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sendMessage", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, sent)
	}))
	defer srv.Close()

	c, err := client.New(client.Config{Endpoint: srv.URL + "/api"})
	require.NoError(t, err)
	register(c)
	require.Equal(t, 2, c.Handlers().Len())

	d := dispatch.New(c.Handlers(), nil)
	for _, wire := range []string{
		`{"message": {"out": false, "id": 1, "date": ` + date + `, "chat": ` + chat + `, "isTopicMessage": false, "text": "ping", "entities": []}}`,
		`{"message": {"out": false, "id": 2, "date": ` + date + `, "chat": ` + chat + `, "isTopicMessage": false, "dice": {"emoji": "x", "value": 3}}}`,
	} {
		res, err := kruto.DecodeJSON(context.Background(), types.UpdateNode, []byte(wire), kruto.WithRef(c))
		require.NoError(t, err)
		require.False(t, res.Raw(), wire)
		rep := d.Dispatch(context.Background(), c, types.AsUpdate(res.Value))
		assert.Equal(t, dispatch.Report{Matched: 1}, rep)
	}

	require.Len(t, bodies, 2)
	assert.True(t, strings.HasPrefix(bodies[0], `[7,"ping",`), bodies[0])
	assert.Contains(t, bodies[0], `"replyTo":{"messageId":1}`)
	assert.True(t, strings.HasPrefix(bodies[1], `[7,"Say what",`), bodies[1])
}

func TestLoadConfig(t *testing.T) {
	_, err := loadConfig("", "")
	assert.Error(t, err)

	cfg, err := loadConfig("", "http://localhost:8000")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Endpoint)
}
