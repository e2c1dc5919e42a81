package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type streamMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func dialStream(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/quizzes" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) streamMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg streamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func send(t *testing.T, conn *websocket.Conn, msgType string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]string{"type": msgType}))
}

func TestQuizStreamServesEachQuestionOnce(t *testing.T) {
	srv := newTestServer(t)
	server := httptest.NewServer(srv.echo)
	defer server.Close()

	conn := dialStream(t, server, "?category=1")

	hello := readMessage(t, conn)
	require.Equal(t, "session", hello.Type)
	var session sessionPayload
	require.NoError(t, json.Unmarshal(hello.Payload, &session))
	assert.Equal(t, 1, session.Category)
	_, err := uuid.Parse(session.SessionID)
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		send(t, conn, "next")
		msg := readMessage(t, conn)
		require.Equal(t, "question", msg.Type, string(msg.Payload))

		var sel struct {
			Question struct {
				ID       int `json:"id"`
				Category int `json:"category"`
			} `json:"question"`
			Repeat bool `json:"repeat"`
		}
		require.NoError(t, json.Unmarshal(msg.Payload, &sel))
		assert.Equal(t, 1, sel.Question.Category)
		assert.False(t, sel.Repeat)
		assert.False(t, seen[sel.Question.ID], "question %d served twice", sel.Question.ID)
		seen[sel.Question.ID] = true
	}

	send(t, conn, "next")
	msg := readMessage(t, conn)
	require.Equal(t, "question", msg.Type)
	assert.Contains(t, string(msg.Payload), `"repeat":true`)

	served, err := srv.progress.Served(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, served)

	send(t, conn, "reset")
	assert.Equal(t, "reset", readMessage(t, conn).Type)
	served, _ = srv.progress.Served(context.Background(), session.SessionID)
	assert.Empty(t, served)

	send(t, conn, "shuffle")
	unsupported := readMessage(t, conn)
	assert.Equal(t, "error", unsupported.Type)
	assert.Contains(t, string(unsupported.Payload), "unsupported message type")
}

func TestQuizStreamResumesSession(t *testing.T) {
	srv := newTestServer(t)
	server := httptest.NewServer(srv.echo)
	defer server.Close()

	sessionID := uuid.NewString()
	_ = srv.progress.MarkServed(context.Background(), sessionID, 4)

	conn := dialStream(t, server, "?category=2&sessionId="+sessionID)
	hello := readMessage(t, conn)
	assert.Contains(t, string(hello.Payload), sessionID)

	send(t, conn, "next")
	msg := readMessage(t, conn)
	require.Equal(t, "question", msg.Type)
	assert.Contains(t, string(msg.Payload), `"id":5`)
}

func TestQuizStreamEmptyCategoryReportsError(t *testing.T) {
	srv := newTestServer(t)
	server := httptest.NewServer(srv.echo)
	defer server.Close()

	conn := dialStream(t, server, "?category=42")
	readMessage(t, conn)

	send(t, conn, "next")
	msg := readMessage(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, string(msg.Payload), "Unprocessable Entity")
}

func TestQuizStreamRejectsBadQuery(t *testing.T) {
	srv := newTestServer(t)
	server := httptest.NewServer(srv.echo)
	defer server.Close()

	base := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/quizzes"
	for _, query := range []string{"?category=abc", "?category=-3", "?sessionId=not-a-uuid"} {
		_, resp, err := websocket.DefaultDialer.Dial(base+query, nil)
		require.Error(t, err, query)
		require.NotNil(t, resp, query)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
	}
}
