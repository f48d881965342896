package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"timetable-api/models"
	"timetable-api/services"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	store        services.ObjectStore
	cacheService *services.CacheService
	bucket       string
	pathPattern  string
}

func NewScheduleHandler(store services.ObjectStore, cache *services.CacheService, bucket, pathPattern string) *ScheduleHandler {
	return &ScheduleHandler{
		store:        store,
		cacheService: cache,
		bucket:       bucket,
		pathPattern:  pathPattern,
	}
}

// GetSchedule возвращает расписание группы целиком или одну неделю (?week=N)
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	group := c.Param("group")
	if group == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "group parameter is required",
		})
		return
	}

	week := 0
	if raw := c.Query("week"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < models.FirstWeek || n > models.LastWeek {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid week",
				Message: fmt.Sprintf("week must be between %d and %d", models.FirstWeek, models.LastWeek),
			})
			return
		}
		week = n
	}

	schedule, cached, status, err := h.loadSchedule(c, group)
	if err != nil {
		c.JSON(status, models.ErrorResponse{
			Error:   "failed to load schedule",
			Message: err.Error(),
		})
		return
	}

	if week == 0 {
		c.JSON(http.StatusOK, gin.H{
			"data":   schedule,
			"cached": cached,
		})
		return
	}

	lessons := schedule.Week(week)
	if lessons == nil {
		lessons = []models.Lesson{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"group":   schedule.Group,
			"week":    week,
			"lessons": lessons,
		},
		"cached": cached,
	})
}

func (h *ScheduleHandler) loadSchedule(c *gin.Context, group string) (*models.GroupSchedule, bool, int, error) {
	// Проверяем кэш
	if schedule, found := h.cacheService.Schedule(group); found {
		return schedule, true, http.StatusOK, nil
	}

	objectPath := fmt.Sprintf(h.pathPattern, group)
	exists, err := h.store.ObjectExists(c.Request.Context(), h.bucket, objectPath)
	if err != nil {
		return nil, false, http.StatusInternalServerError, err
	}
	if !exists {
		return nil, false, http.StatusNotFound, fmt.Errorf("group %s not found", group)
	}

	data, err := h.store.DownloadFile(c.Request.Context(), h.bucket, objectPath)
	if err != nil {
		return nil, false, http.StatusInternalServerError, err
	}

	var schedule models.GroupSchedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		return nil, false, http.StatusInternalServerError, fmt.Errorf("corrupted schedule %s: %w", objectPath, err)
	}

	// Сохраняем в кэш
	h.cacheService.SetSchedule(&schedule)
	return &schedule, false, http.StatusOK, nil
}

// GetDownloadURL возвращает presigned URL на json группы
func (h *ScheduleHandler) GetDownloadURL(c *gin.Context) {
	group := c.Param("group")
	objectPath := fmt.Sprintf(h.pathPattern, group)

	exists, err := h.store.ObjectExists(c.Request.Context(), h.bucket, objectPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to check file existence",
			Message: err.Error(),
		})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "group not found",
		})
		return
	}

	urlResponse, err := h.store.PresignedGetURL(c.Request.Context(), h.bucket, objectPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate download url",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, urlResponse)
}

// InvalidateCache удаляет кэш
func (h *ScheduleHandler) InvalidateCache(c *gin.Context) {
	h.cacheService.Flush()
	c.JSON(http.StatusOK, gin.H{
		"message": "cache invalidated successfully",
	})
}
