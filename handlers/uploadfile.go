package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"timetable-api/models"
	"timetable-api/services"

	"github.com/gin-gonic/gin"
)

type UploadFileHandler struct {
	store             services.ObjectStore
	parserService     *services.ParserService
	cacheService      *services.CacheService
	sourceBucket      string
	targetBucket      string
	sourcePathPattern string
	groupPathPattern  string
}

func NewUploadFileHandler(store services.ObjectStore, parser *services.ParserService, cache *services.CacheService, sourceBucket, targetBucket, sourcePathPattern, groupPathPattern string) *UploadFileHandler {
	return &UploadFileHandler{
		store:             store,
		parserService:     parser,
		cacheService:      cache,
		sourceBucket:      sourceBucket,
		targetBucket:      targetBucket,
		sourcePathPattern: sourcePathPattern,
		groupPathPattern:  groupPathPattern,
	}
}

type FileItem struct {
	FileName string `json:"file_name" binding:"required"`
}

type ProcessFilesRequest struct {
	Files []FileItem `json:"files" binding:"required,min=1,dive"`
}

type ProcessFileResult struct {
	FileName   string `json:"file_name"`
	SourceFile string `json:"source_file"`
	Groups     int    `json:"groups"`
	Warnings   int    `json:"warnings"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// ProcessFile разбирает загруженные таблицы и сохраняет расписания групп
func (h *UploadFileHandler) ProcessFile(c *gin.Context) {
	log.Println("UploadFileHandler - ProcessFile")

	var req ProcessFilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	results := make([]ProcessFileResult, 0, len(req.Files))
	successCount := 0
	failureCount := 0

	for _, fileItem := range req.Files {
		result := h.processOneFile(c, fileItem)
		results = append(results, result)

		if result.Success {
			successCount++
		} else {
			failureCount++
		}
	}

	statusCode := http.StatusOK
	if failureCount > 0 && successCount == 0 {
		statusCode = http.StatusInternalServerError
	} else if failureCount > 0 {
		statusCode = http.StatusMultiStatus
	}

	c.JSON(statusCode, gin.H{
		"message":       fmt.Sprintf("processed %d files: %d succeeded, %d failed", len(req.Files), successCount, failureCount),
		"total":         len(req.Files),
		"succeeded":     successCount,
		"failed":        failureCount,
		"results":       results,
		"source_bucket": h.sourceBucket,
		"target_bucket": h.targetBucket,
	})
}

func (h *UploadFileHandler) processOneFile(c *gin.Context, fileItem FileItem) ProcessFileResult {
	ctx := c.Request.Context()
	result := ProcessFileResult{FileName: fileItem.FileName}

	if !validTimetableName(fileItem.FileName) {
		result.Error = "invalid file name: expected .xlsx or .xls without path"
		return result
	}

	sourcePath := fmt.Sprintf(h.sourcePathPattern, fileItem.FileName)
	result.SourceFile = sourcePath

	log.Printf("Проверка существования файла в %s: %s", h.sourceBucket, sourcePath)
	exists, err := h.store.ObjectExists(ctx, h.sourceBucket, sourcePath)
	if err != nil {
		result.Error = fmt.Sprintf("failed to check file existence: %v", err)
		return result
	}
	if !exists {
		result.Error = fmt.Sprintf("file not found in bucket: %s", sourcePath)
		return result
	}

	data, err := h.store.DownloadFile(ctx, h.sourceBucket, sourcePath)
	if err != nil {
		result.Error = fmt.Sprintf("failed to download file: %v", err)
		log.Printf("Ошибка скачивания %s: %v", sourcePath, err)
		return result
	}

	log.Printf("Парсинг файла: %s", fileItem.FileName)
	schedules, err := h.parserService.ParseWorkbook(ctx, bytes.NewReader(data), fileItem.FileName)
	if err != nil {
		result.Error = fmt.Sprintf("failed to parse file: %v", err)
		log.Printf("Ошибка парсинга %s: %v", sourcePath, err)
		return result
	}

	sink := services.NewStoreSink(h.store, h.targetBucket, h.groupPathPattern)
	if err := h.parserService.Publish(ctx, schedules, sink); err != nil {
		result.Error = fmt.Sprintf("failed to store schedules: %v", err)
		log.Printf("Ошибка загрузки расписаний %s: %v", sourcePath, err)
		return result
	}

	for _, schedule := range schedules {
		h.cacheService.InvalidateGroup(schedule.Group)
		result.Warnings += len(schedule.Warnings)
	}
	result.Groups = len(schedules)
	result.Success = true

	log.Printf("Файл успешно обработан: %s, групп %d", sourcePath, result.Groups)
	return result
}

// validTimetableName пропускает только имя .xlsx/.xls без каталогов
func validTimetableName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return (ext == ".xlsx" || ext == ".xls") && !strings.ContainsAny(name, `/\`)
}

type UploadURLRequest struct {
	FileName string `json:"file_name" binding:"required"`
}

// GetUploadURL выдает presigned URL для загрузки новой таблицы
func (h *UploadFileHandler) GetUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if !validTimetableName(req.FileName) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "file_name must be an .xlsx or .xls file name",
		})
		return
	}

	urlResponse, err := h.store.PresignedPutURL(c.Request.Context(), h.sourceBucket, fmt.Sprintf(h.sourcePathPattern, req.FileName))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate upload url",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, urlResponse)
}
