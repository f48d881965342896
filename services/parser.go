package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"timetable-api/models"

	"golang.org/x/sync/errgroup"
)

type ParserService struct {
	headerRow int
	nameWidth int
	workers   int
}

func NewParserService(headerRow, nameWidth, workers int) *ParserService {
	if workers < 1 {
		workers = 1
	}
	return &ParserService{
		headerRow: headerRow,
		nameWidth: nameWidth,
		workers:   workers,
	}
}

// OpenGrid читает первый лист книги, формат по расширению файла
func (s *ParserService) OpenGrid(file io.Reader, fileName string) (CellGrid, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx":
		return NewXLSXGrid(file)
	case ".xls":
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read xls: %w", err)
		}
		return NewXLSGrid(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileName)
	}
}

// Groups находит группы в строке заголовка
func (s *ParserService) Groups(grid CellGrid) ([]models.Group, error) {
	groups, err := DiscoverGroups(grid, s.headerRow, s.nameWidth)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("no groups found in header row %d", s.headerRow)
	}
	return groups, nil
}

// BuildAll строит расписания групп параллельно, результат в порядке колонок
func (s *ParserService) BuildAll(ctx context.Context, grid CellGrid, groups []models.Group) ([]*models.GroupSchedule, error) {
	schedules := make([]*models.GroupSchedule, len(groups))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			schedule, err := BuildSchedule(grid, group)
			if err != nil {
				return err
			}
			schedules[i] = schedule
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// ParseWorkbook разбирает книгу целиком: все группы первого листа
func (s *ParserService) ParseWorkbook(ctx context.Context, file io.Reader, fileName string) ([]*models.GroupSchedule, error) {
	grid, err := s.OpenGrid(file, fileName)
	if err != nil {
		return nil, err
	}

	groups, err := s.Groups(grid)
	if err != nil {
		return nil, err
	}
	log.Printf("Найдено групп: %d", len(groups))

	return s.BuildAll(ctx, grid, groups)
}

// Publish передает расписания в sink
func (s *ParserService) Publish(ctx context.Context, schedules []*models.GroupSchedule, sink ScheduleSink) error {
	for _, schedule := range schedules {
		if err := sink.Save(ctx, schedule); err != nil {
			return fmt.Errorf("failed to save group %s: %w", schedule.Group, err)
		}
		if len(schedule.Warnings) > 0 {
			log.Printf("Группа %s: пропущено строк %d, предупреждений %d", schedule.Group, schedule.Stats.SkippedRows, len(schedule.Warnings))
		}
	}
	return nil
}
