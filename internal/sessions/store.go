package sessions

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Store keeps profiling sessions in memory, keyed by session ID, with a TTL
// per entry. Expired entries are removed by a scheduled sweep, not by a
// manually-invoked cleanup. Access is safe for concurrent use.
type Store struct {
	cache *gocache.Cache
	cron  *cron.Cron
}

func NewStore(ttl time.Duration) (*Store, error) {

	if ttl <= 0 {
		return nil, errors.New("session ttl must be greater than zero")
	}

	s := &Store{
		cache: gocache.New(ttl, 0),
		cron:  cron.New(),
	}

	_, err := s.cron.AddFunc("0 * * * *", s.sweep)
	if err != nil {
		return nil, err
	}

	s.cron.Start()
	log.Infof("session store started, ttl: %v", ttl)
	return s, nil
}

func (s *Store) Stop() {
	s.cron.Stop()
}

func (s *Store) Get(id string) (Session, bool) {
	value, found := s.cache.Get(id)
	if !found {
		return Session{}, false
	}
	return value.(Session), true
}

// Save inserts or replaces a session and resets its TTL.
func (s *Store) Save(session Session) {
	s.cache.Set(session.ID, session, gocache.DefaultExpiration)
}

func (s *Store) Delete(id string) bool {
	if _, found := s.cache.Get(id); !found {
		return false
	}
	s.cache.Delete(id)
	return true
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}

func (s *Store) sweep() {
	before := s.cache.ItemCount()
	s.cache.DeleteExpired()
	if removed := before - s.cache.ItemCount(); removed > 0 {
		log.Infof("swept %v expired sessions", removed)
	}
}
