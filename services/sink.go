package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"timetable-api/models"
)

// ScheduleSink receives finished group schedules.
type ScheduleSink interface {
	Save(ctx context.Context, schedule *models.GroupSchedule) error
}

// EncodeSchedule serializes a group schedule to JSON.
func EncodeSchedule(schedule *models.GroupSchedule, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(schedule, "", "  ")
	}
	return json.Marshal(schedule)
}

// DirSink writes <group>.json files into a directory.
type DirSink struct {
	Dir    string
	Pretty bool
}

func (s *DirSink) Save(_ context.Context, schedule *models.GroupSchedule) error {
	if !ValidGroupName(schedule.Group) {
		return fmt.Errorf("invalid group name %q", schedule.Group)
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	data, err := EncodeSchedule(schedule, s.Pretty)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", schedule.Group, err)
	}
	return os.WriteFile(filepath.Join(s.Dir, schedule.Group+".json"), data, 0644)
}

// StoreSink uploads group schedules to object storage.
type StoreSink struct {
	store   ObjectStore
	bucket  string
	pattern string // например groups/%s.json
}

func NewStoreSink(store ObjectStore, bucket, pattern string) *StoreSink {
	return &StoreSink{store: store, bucket: bucket, pattern: pattern}
}

func (s *StoreSink) Save(ctx context.Context, schedule *models.GroupSchedule) error {
	if !ValidGroupName(schedule.Group) {
		return fmt.Errorf("invalid group name %q", schedule.Group)
	}
	data, err := EncodeSchedule(schedule, false)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", schedule.Group, err)
	}
	path := fmt.Sprintf(s.pattern, schedule.Group)
	return s.store.UploadFile(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)), "application/json")
}
