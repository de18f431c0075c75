package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eduforge/intern-matcher/internal/llmjson"
	"github.com/eduforge/intern-matcher/internal/logger"
	"github.com/eduforge/intern-matcher/internal/sessions"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

const profilingSystemRole = "You are a friendly career profiling assistant for students. Return only valid JSON."

// ProfilingService drives a profiling conversation. Each turn sends the
// history to the LLM and expects a JSON reply; a failed or malformed reply
// degrades to a canned response without advancing the conversation.
type ProfilingService struct {
	ai    aiClient
	store *sessions.Store
}

func NewProfilingService(ai aiClient, store *sessions.Store) *ProfilingService {
	return &ProfilingService{ai: ai, store: store}
}

func (p *ProfilingService) StartSession(studentName string) sessions.Session {

	session := sessions.Session{
		ID:             uuid.New().String(),
		StudentName:    studentName,
		CurrentSection: "career_direction",
		CreatedAt:      time.Now().UTC(),
	}

	session.Append("assistant", welcomeMessage(studentName))

	p.store.Save(session)
	log.Infof("profiling session %v started", session.ID)
	return session
}

func (p *ProfilingService) ProcessMessage(ctx context.Context, sessionID string, message string) (sessions.Session, error) {

	session, found := p.store.Get(sessionID)
	if !found {
		return sessions.Session{}, ErrSessionNotFound
	}

	session.Append("user", message)

	response, err := p.ai.Complete(ctx, conversationPrompt(session), profilingSystemRole)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
			Errorf("profiling turn failed for session %v: %v", sessionID, err)
		session.Append("assistant", "Sorry, I didn't catch that. Could you tell me a bit more?")
		p.store.Save(session)
		return session, nil
	}

	obj, err := llmjson.DecodeObject(response)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAiApi).
			Errorf("malformed profiling reply for session %v: %v", sessionID, err)
		obj = map[string]any{}
	}

	reply := llmjson.String(obj, "reply", "Let's keep going — what are you most interested in?")
	session.CurrentSection = llmjson.String(obj, "section", session.CurrentSection)
	session.Progress = clamp(llmjson.Int(obj, "progress", session.Progress), 0, 100)

	session.Append("assistant", reply)
	p.store.Save(session)
	return session, nil
}

func (p *ProfilingService) GetSession(sessionID string) (sessions.Session, error) {
	session, found := p.store.Get(sessionID)
	if !found {
		return sessions.Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (p *ProfilingService) DeleteSession(sessionID string) error {
	if !p.store.Delete(sessionID) {
		return ErrSessionNotFound
	}
	return nil
}

func welcomeMessage(studentName string) string {
	if studentName != "" {
		return fmt.Sprintf("Hi %s! I'm here to help map out your career direction. "+
			"What field are you most drawn to right now?", studentName)
	}
	return "Hi! I'm here to help map out your career direction. " +
		"What field are you most drawn to right now?"
}

func conversationPrompt(session sessions.Session) string {

	var history strings.Builder
	for _, message := range session.Messages {
		history.WriteString(fmt.Sprintf("%s: %s\n", message.Role, message.Content))
	}

	return fmt.Sprintf(`You are profiling a student to understand their career direction.
Current section: %s. Progress so far: %d%%.

Conversation:
%s
Continue the conversation with one short question or acknowledgement.

Return ONLY valid JSON in this exact format:
{"reply": "...", "section": "%s", "progress": %d}`,
		session.CurrentSection, session.Progress, history.String(),
		session.CurrentSection, session.Progress)
}
