package services

import (
	"fmt"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/course-platform/internal/models"
)

// eventMatcher matches an Event ignoring its timestamp.
type eventMatcher struct {
	typ      models.EventType
	entityID int64
	userID   int64
}

func eventOf(typ models.EventType, entityID, userID int64) gomock.Matcher {
	return eventMatcher{typ: typ, entityID: entityID, userID: userID}
}

func (m eventMatcher) Matches(x interface{}) bool {
	evt, ok := x.(models.Event)
	if !ok {
		return false
	}
	return evt.Type == m.typ && evt.EntityID == m.entityID && evt.UserID == m.userID && !evt.OccurredAt.IsZero()
}

func (m eventMatcher) String() string {
	return fmt.Sprintf("event %s entity=%d user=%d", m.typ, m.entityID, m.userID)
}

func strPtr(s string) *string { return &s }
