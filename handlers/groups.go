package handlers

import (
	"log"
	"net/http"
	"path"
	"strings"

	"timetable-api/models"
	"timetable-api/services"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	store        services.ObjectStore
	cacheService *services.CacheService
	bucket       string
	pathPattern  string
}

func NewGroupHandler(store services.ObjectStore, cache *services.CacheService, bucket, pathPattern string) *GroupHandler {
	return &GroupHandler{
		store:        store,
		cacheService: cache,
		bucket:       bucket,
		pathPattern:  pathPattern,
	}
}

// GetGroups возвращает список групп, для которых есть расписание
func (h *GroupHandler) GetGroups(c *gin.Context) {
	log.Println("GroupHandler - GetGroups")

	// Проверяем кэш
	if cached, found := h.cacheService.Groups(); found {
		c.JSON(http.StatusOK, gin.H{
			"data":   cached,
			"cached": true,
		})
		return
	}

	// groups/%s.json -> префикс groups/
	prefix := path.Dir(h.pathPattern) + "/"
	if prefix == "./" {
		prefix = ""
	}
	files, err := h.store.ListFiles(c.Request.Context(), h.bucket, prefix, ".json")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list groups",
			Message: err.Error(),
		})
		return
	}

	groups := make([]string, 0, len(files))
	for _, file := range files {
		groups = append(groups, strings.TrimSuffix(file.Name, ".json"))
	}

	h.cacheService.SetGroups(groups)

	c.JSON(http.StatusOK, gin.H{
		"data":   groups,
		"cached": false,
	})
}
