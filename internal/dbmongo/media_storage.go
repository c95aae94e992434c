package dbmongo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MediaStorage stores chat attachments and post media as GridFS blobs.
// Files are keyed by an upload path (room/message/filename for chat) kept
// in metadata so dumps remain traceable to their origin.
type MediaStorage struct {
	gridFS     *gridfs.Bucket
	publicBase string
}

// BlobStore is the part of the storage the chat and feed services need.
type BlobStore interface {
	Upload(ctx context.Context, key, filename, mimeType, uploaderID string, content io.Reader) (*StoredFile, error)
	Download(ctx context.Context, fileID string) (io.Reader, *StoredFile, error)
	Delete(ctx context.Context, fileID string) error
	PublicURL(fileID string) string
}

func NewMediaStorage(mongoClient *MongoClient, publicBase string) *MediaStorage {
	return &MediaStorage{
		gridFS:     mongoClient.GridFS,
		publicBase: publicBase,
	}
}

type StoredFile struct {
	ID         string    `json:"id"`          // GridFS ObjectID hex
	Key        string    `json:"key"`         // upload path, e.g. room/message/filename
	Filename   string    `json:"filename"`    // original filename
	Size       int64     `json:"size"`        // bytes
	MimeType   string    `json:"mime_type"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func (ms *MediaStorage) Upload(ctx context.Context, key, filename, mimeType, uploaderID string, content io.Reader) (*StoredFile, error) {
	metadata := bson.M{
		"key":         key,
		"mime_type":   mimeType,
		"uploaded_by": uploaderID,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	size, err := io.Copy(stream, content)
	if err != nil {
		return nil, fmt.Errorf("file copy failed: %w", err)
	}

	return &StoredFile{
		ID:         stream.FileID.(primitive.ObjectID).Hex(),
		Key:        key,
		Filename:   filename,
		Size:       size,
		MimeType:   mimeType,
		UploadedBy: uploaderID,
		UploadedAt: time.Now(),
	}, nil
}

func (ms *MediaStorage) Download(ctx context.Context, fileID string) (io.Reader, *StoredFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := ms.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	stored := &StoredFile{
		ID:         fileID,
		Key:        getStringFromMap(metadata, "key"),
		Filename:   fileInfo.Name,
		Size:       fileInfo.Length,
		MimeType:   getStringFromMap(metadata, "mime_type"),
		UploadedBy: getStringFromMap(metadata, "uploaded_by"),
		UploadedAt: fileInfo.UploadDate,
	}

	return stream, stored, nil
}

func (ms *MediaStorage) Delete(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	return ms.gridFS.Delete(objectID)
}

// PublicURL returns the media-server URL clients fetch the file from.
func (ms *MediaStorage) PublicURL(fileID string) string {
	return fmt.Sprintf("%s/%s", ms.publicBase, fileID)
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
