package assistant

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textReply(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"role":"model","parts":[{"text":%q}]}}]}`, text)
}

// newTestClient points a client at a local fake of the generate endpoint
// and hands captured request bodies back through got.
func newTestClient(t *testing.T, status int, reply string, got *generateRequest) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/models/gemini-3-pro-preview:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.WriteHeader(status)
		fmt.Fprint(w, reply)
	}))
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "")
	c.baseURL = srv.URL
	return c
}

func TestChat(t *testing.T) {
	var got generateRequest
	c := newTestClient(t, http.StatusOK, textReply("Silk needs dry cleaning."), &got)

	out, err := c.Chat("How do I care for silk?", nil)
	require.NoError(t, err)
	assert.Equal(t, "Silk needs dry cleaning.", out)

	require.NotNil(t, got.SystemInstruction)
	assert.Contains(t, got.SystemInstruction.Parts[0].Text, "BusyBot")

	require.Len(t, got.Contents, 1)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "How do I care for silk?", got.Contents[0].Parts[0].Text)
}

func TestChatHistoryWindow(t *testing.T) {
	var got generateRequest
	c := newTestClient(t, http.StatusOK, textReply("ok"), &got)

	history := make([]ChatTurn, 8)
	for i := range history {
		role := "user"
		if i%2 == 1 {
			role = "model"
		}
		history[i] = ChatTurn{Role: role, Text: "turn " + strconv.Itoa(i)}
	}

	_, err := c.Chat("latest", history)
	require.NoError(t, err)

	// Only the last five turns travel, followed by the new message.
	require.Len(t, got.Contents, 6)
	assert.Equal(t, "turn 3", got.Contents[0].Parts[0].Text)
	assert.Equal(t, "latest", got.Contents[5].Parts[0].Text)
}

func TestChatNormalizesRoles(t *testing.T) {
	var got generateRequest
	c := newTestClient(t, http.StatusOK, textReply("ok"), &got)

	_, err := c.Chat("hi", []ChatTurn{
		{Role: "assistant", Text: "previous reply"},
		{Role: "model", Text: "another reply"},
	})
	require.NoError(t, err)

	require.Len(t, got.Contents, 3)
	assert.Equal(t, "user", got.Contents[0].Role, "unknown roles collapse to user")
	assert.Equal(t, "model", got.Contents[1].Role)
}

func TestAnalyzeImage(t *testing.T) {
	var got generateRequest
	c := newTestClient(t, http.StatusOK, textReply("Cotton, floral pattern."), &got)

	img := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	out, err := c.AnalyzeImage(img, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Cotton, floral pattern.", out)

	require.Len(t, got.Contents, 1)
	parts := got.Contents[0].Parts
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0].Text, "textile shop inventory")
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/jpeg", parts[1].InlineData.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(img), parts[1].InlineData.Data)
}

func TestChatHTTPError(t *testing.T) {
	c := newTestClient(t, http.StatusTooManyRequests, `{"error":{"code":429,"message":"quota"}}`, nil)

	_, err := c.Chat("hi", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestChatErrorEnvelope(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `{"error":{"code":400,"message":"invalid key"}}`, nil)

	_, err := c.Chat("hi", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")
}

func TestChatEmptyCandidates(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `{"candidates":[]}`, nil)

	_, err := c.Chat("hi", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text")
}
