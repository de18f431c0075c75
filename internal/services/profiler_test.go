package services

import (
	"context"
	"testing"
	"time"

	"github.com/eduforge/intern-matcher/internal/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSessionStore(t *testing.T) *sessions.Store {
	store, err := sessions.NewStore(time.Hour)
	assert.NoError(t, err)
	t.Cleanup(store.Stop)
	return store
}

func Test_ProfilingService_StartSession_CreatesWelcomedSession(t *testing.T) {

	service := NewProfilingService(&mockAiClient{}, newSessionStore(t))

	session := service.StartSession("Nour")

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "career_direction", session.CurrentSection)
	assert.Equal(t, 0, session.Progress)
	assert.Len(t, session.Messages, 1)
	assert.Equal(t, "assistant", session.Messages[0].Role)
	assert.Contains(t, session.Messages[0].Content, "Nour")

	stored, err := service.GetSession(session.ID)
	assert.NoError(t, err)
	assert.Equal(t, session.ID, stored.ID)
}

func Test_ProfilingService_ProcessMessage_AdvancesConversation(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"reply": "Great, tell me about your projects.", "section": "experience", "progress": 35}`, nil)

	service := NewProfilingService(ai, newSessionStore(t))
	started := service.StartSession("")

	session, err := service.ProcessMessage(context.Background(), started.ID, "I like backend development")

	assert.NoError(t, err)
	assert.Equal(t, "experience", session.CurrentSection)
	assert.Equal(t, 35, session.Progress)
	assert.Len(t, session.Messages, 3)
	assert.Equal(t, "user", session.Messages[1].Role)
	assert.Equal(t, "Great, tell me about your projects.", session.Messages[2].Content)
}

func Test_ProfilingService_ProcessMessage_AiFailureDegradesToCannedReply(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	service := NewProfilingService(ai, newSessionStore(t))
	started := service.StartSession("")

	session, err := service.ProcessMessage(context.Background(), started.ID, "hello?")

	assert.NoError(t, err)
	assert.Equal(t, "career_direction", session.CurrentSection)
	assert.Equal(t, 0, session.Progress)
	assert.Len(t, session.Messages, 3)
	assert.NotEmpty(t, session.Messages[2].Content)
}

func Test_ProfilingService_ProcessMessage_MalformedReplyKeepsSessionState(t *testing.T) {

	ai := &mockAiClient{}
	ai.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("here is my thinking, not json", nil)

	service := NewProfilingService(ai, newSessionStore(t))
	started := service.StartSession("")

	session, err := service.ProcessMessage(context.Background(), started.ID, "hi")

	assert.NoError(t, err)
	assert.Equal(t, "career_direction", session.CurrentSection)
	assert.Equal(t, 0, session.Progress)
	assert.Len(t, session.Messages, 3)
}

func Test_ProfilingService_ProcessMessage_UnknownSessionIsError(t *testing.T) {

	service := NewProfilingService(&mockAiClient{}, newSessionStore(t))

	_, err := service.ProcessMessage(context.Background(), "nope", "hi")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func Test_ProfilingService_DeleteSession(t *testing.T) {

	service := NewProfilingService(&mockAiClient{}, newSessionStore(t))
	started := service.StartSession("")

	assert.NoError(t, service.DeleteSession(started.ID))
	assert.ErrorIs(t, service.DeleteSession(started.ID), ErrSessionNotFound)
	assert.ErrorIs(t, func() error { _, err := service.GetSession(started.ID); return err }(), ErrSessionNotFound)
}
