package events

import "github.com/eduforge/intern-matcher/internal/domain/models"

var MatchCompletedTopic = "MatchCompletedEvent"

type MatchCompleted struct {
	Run models.MatchRun
}
