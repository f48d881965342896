package services

import (
	"time"

	"timetable-api/models"

	"github.com/patrickmn/go-cache"
)

const groupsKey = "groups"

type CacheService struct {
	cache *cache.Cache
}

func NewCacheService(defaultExpiration, cleanupInterval time.Duration) *CacheService {
	return &CacheService{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *CacheService) Groups() ([]string, bool) {
	cached, found := s.cache.Get(groupsKey)
	if !found {
		return nil, false
	}
	groups, ok := cached.([]string)
	return groups, ok
}

func (s *CacheService) SetGroups(groups []string) {
	s.cache.Set(groupsKey, groups, cache.DefaultExpiration)
}

func (s *CacheService) Schedule(group string) (*models.GroupSchedule, bool) {
	cached, found := s.cache.Get(scheduleKey(group))
	if !found {
		return nil, false
	}
	schedule, ok := cached.(*models.GroupSchedule)
	return schedule, ok
}

func (s *CacheService) SetSchedule(schedule *models.GroupSchedule) {
	s.cache.Set(scheduleKey(schedule.Group), schedule, cache.DefaultExpiration)
}

// InvalidateGroup сбрасывает расписание группы и список групп
func (s *CacheService) InvalidateGroup(group string) {
	s.cache.Delete(scheduleKey(group))
	s.cache.Delete(groupsKey)
}

func (s *CacheService) Flush() {
	s.cache.Flush()
}

func scheduleKey(group string) string {
	return "schedule:" + group
}
