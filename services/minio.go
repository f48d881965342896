package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"timetable-api/config"
	"timetable-api/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore хранилище исходных таблиц и json расписаний групп
type ObjectStore interface {
	ListFiles(ctx context.Context, bucket, prefix, suffix string) ([]models.ScheduleFile, error)
	ObjectExists(ctx context.Context, bucket, objectPath string) (bool, error)
	DownloadFile(ctx context.Context, bucket, objectPath string) ([]byte, error)
	UploadFile(ctx context.Context, bucket, objectPath string, reader io.Reader, size int64, contentType string) error
	PresignedGetURL(ctx context.Context, bucket, objectPath string) (*models.PresignedURLResponse, error)
	PresignedPutURL(ctx context.Context, bucket, objectPath string) (*models.PresignedURLResponse, error)
}

type MinIOService struct {
	client *minio.Client
	urlTTL time.Duration
}

func NewMinIOService(cfg *config.Config) (*MinIOService, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinIOService{
		client: client,
		urlTTL: cfg.PresignedURLTTL,
	}, nil
}

// ListFiles возвращает объекты с префиксом и нужным расширением
func (s *MinIOService) ListFiles(ctx context.Context, bucket, prefix, suffix string) ([]models.ScheduleFile, error) {
	log.Printf("MinIOService - ListFiles %s/%s", bucket, prefix)
	var files []models.ScheduleFile

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}

	for object := range s.client.ListObjects(ctx, bucket, opts) {
		if object.Err != nil {
			return nil, object.Err
		}
		// Игнорируем директории
		if strings.HasSuffix(object.Key, "/") {
			continue
		}
		if suffix != "" && !strings.HasSuffix(strings.ToLower(object.Key), suffix) {
			continue
		}

		files = append(files, models.ScheduleFile{
			Name:         extractFileName(object.Key),
			Path:         object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
			ETag:         object.ETag,
		})
	}

	return files, nil
}

// ObjectExists проверяет существование объекта в бакете
func (s *MinIOService) ObjectExists(ctx context.Context, bucket, objectPath string) (bool, error) {
	_, err := s.client.StatObject(ctx, bucket, objectPath, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DownloadFile скачивает файл из указанного бакета
func (s *MinIOService) DownloadFile(ctx context.Context, bucket, objectPath string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, bucket, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return data, nil
}

// UploadFile загружает файл в указанный бакет
func (s *MinIOService) UploadFile(ctx context.Context, bucket, objectPath string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, objectPath, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// PresignedGetURL генерирует presigned URL для скачивания json группы
func (s *MinIOService) PresignedGetURL(ctx context.Context, bucket, objectPath string) (*models.PresignedURLResponse, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=\"%s\"", extractFileName(objectPath)))

	presignedURL, err := s.client.PresignedGetObject(ctx, bucket, objectPath, s.urlTTL, reqParams)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned url: %w", err)
	}

	return &models.PresignedURLResponse{
		URL:       presignedURL.String(),
		ExpiresAt: time.Now().Add(s.urlTTL),
		FileName:  extractFileName(objectPath),
	}, nil
}

// PresignedPutURL генерирует presigned URL для загрузки новой таблицы
func (s *MinIOService) PresignedPutURL(ctx context.Context, bucket, objectPath string) (*models.PresignedURLResponse, error) {
	presignedURL, err := s.client.PresignedPutObject(ctx, bucket, objectPath, s.urlTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate upload url: %w", err)
	}

	return &models.PresignedURLResponse{
		URL:       presignedURL.String(),
		ExpiresAt: time.Now().Add(s.urlTTL),
		FileName:  extractFileName(objectPath),
	}, nil
}

func extractFileName(path string) string {
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}
