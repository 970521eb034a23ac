package controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coderanik/Alumni-Connect/internal/pkg/auth"
	messaging "github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/domain"
	"github.com/coderanik/Alumni-Connect/internal/pkg/messaging/application/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMessageRepository backs the controller tests with canned behavior.
type stubMessageRepository struct {
	conversation *messaging.Conversation
	messages     []messaging.Message
	saveErr      error
	findErr      error
}

func (s *stubMessageRepository) FindOrCreateConversation(ctx context.Context, a, b string) (*messaging.Conversation, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.conversation == nil {
		conv, _ := messaging.NewConversation(a, b)
		conv.ID = "conv-1"
		s.conversation = conv
	}
	return s.conversation, nil
}

func (s *stubMessageRepository) FindConversation(ctx context.Context, a, b string) (*messaging.Conversation, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.conversation, nil
}

func (s *stubMessageRepository) SaveMessage(ctx context.Context, m messaging.Message) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	m.ID = "msg-1"
	s.messages = append(s.messages, m)
	return m.ID, nil
}

func (s *stubMessageRepository) GetMessagesByConversation(ctx context.Context, conversationID string) ([]messaging.Message, error) {
	return s.messages, nil
}

const testSecret = "controller-test-secret"

func newMessagingTestRouter(repo *stubMessageRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	requireAuth := auth.Middleware(testSecret)

	sendCtl := &SendMessageController{UC: usecase.NewSendMessageUseCase(repo, nil)}
	getCtl := &GetMessagesController{UC: usecase.NewGetMessagesUseCase(repo)}

	g := r.Group("/api/messages")
	g.POST("/send/:receiverId", requireAuth, sendCtl.Handle())
	g.GET("/:userToChatId", requireAuth, getCtl.Handle())
	return r
}

func authedRequest(t *testing.T, method, target, body, userID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	token, err := auth.NewToken(testSecret, userID)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestSendMessageEndpointPersistsAndReturns201(t *testing.T) {
	repo := &stubMessageRepository{}
	r := newMessagingTestRouter(repo)

	req := authedRequest(t, http.MethodPost, "/api/messages/send/bob", `{"message":"hi"}`, "alice")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"senderId":"alice"`)
	assert.Contains(t, rec.Body.String(), `"receiverId":"bob"`)
	assert.Contains(t, rec.Body.String(), `"message":"hi"`)
	require.Len(t, repo.messages, 1)
}

func TestSendMessageEndpointRejectsMissingBearer(t *testing.T) {
	r := newMessagingTestRouter(&stubMessageRepository{})

	req := httptest.NewRequest(http.MethodPost, "/api/messages/send/bob", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSendMessageEndpointMapsStorageFailureTo500(t *testing.T) {
	repo := &stubMessageRepository{saveErr: errors.New("db down")}
	r := newMessagingTestRouter(repo)

	req := authedRequest(t, http.MethodPost, "/api/messages/send/bob", `{"message":"hi"}`, "alice")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestSendMessageEndpointRejectsMalformedJSON(t *testing.T) {
	r := newMessagingTestRouter(&stubMessageRepository{})

	req := authedRequest(t, http.MethodPost, "/api/messages/send/bob", `{"message":`, "alice")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMessagesEndpointReturnsEmptyArrayWithoutConversation(t *testing.T) {
	r := newMessagingTestRouter(&stubMessageRepository{})

	req := authedRequest(t, http.MethodGet, "/api/messages/bob", "", "alice")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetMessagesEndpointReturnsHistory(t *testing.T) {
	repo := &stubMessageRepository{}
	r := newMessagingTestRouter(repo)

	send := authedRequest(t, http.MethodPost, "/api/messages/send/bob", `{"message":"hi"}`, "alice")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, send)
	require.Equal(t, http.StatusCreated, rec.Code)

	get := authedRequest(t, http.MethodGet, "/api/messages/bob", "", "alice")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, get)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"hi"`)
}
