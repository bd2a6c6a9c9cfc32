package usecase

import (
	"context"
	"sync"

	"telegram-object-detection/internal/domain"
	"telegram-object-detection/internal/domain/model"
)

// sentText records one outbound transport call.
type sentText struct {
	chatID int64
	text   string
}

// fakeTransport is a small in-memory chat transport used by unit tests.
type fakeTransport struct {
	mu           sync.Mutex
	texts        []sentText
	photos       []sentText // text holds the local path
	downloadPath string
	downloadErr  error
	sendTextErr  error
	sendPhotoErr error
	downloaded   []string // file ids passed to DownloadPhoto
}

func (f *fakeTransport) SendText(ctx context.Context, chatID int64, text string) error {
	if f.sendTextErr != nil {
		return f.sendTextErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, sentText{chatID: chatID, text: text})
	return nil
}

func (f *fakeTransport) SendTextWithQuote(ctx context.Context, chatID int64, text string, quotedMsgID int) error {
	return f.SendText(ctx, chatID, text)
}

func (f *fakeTransport) SendPhoto(ctx context.Context, chatID int64, localPath string) error {
	if f.sendPhotoErr != nil {
		return f.sendPhotoErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.photos = append(f.photos, sentText{chatID: chatID, text: localPath})
	return nil
}

func (f *fakeTransport) DownloadPhoto(ctx context.Context, fileID string) (string, error) {
	f.mu.Lock()
	f.downloaded = append(f.downloaded, fileID)
	f.mu.Unlock()
	if f.downloadErr != nil {
		return "", f.downloadErr
	}
	return f.downloadPath, nil
}

type uploadCall struct {
	localPath string
	key       string
}

// fakeStore is an in-memory object store.
type fakeStore struct {
	mu           sync.Mutex
	uploads      []uploadCall
	uploadURI    string
	uploadErr    error
	downloads    []string
	downloadPath string
	downloadErr  error
}

func (f *fakeStore) Upload(ctx context.Context, localPath, key string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, uploadCall{localPath: localPath, key: key})
	return f.uploadURI, nil
}

func (f *fakeStore) Download(ctx context.Context, remoteURI string) (string, error) {
	f.mu.Lock()
	f.downloads = append(f.downloads, remoteURI)
	f.mu.Unlock()
	if f.downloadErr != nil {
		return "", f.downloadErr
	}
	return f.downloadPath, nil
}

func (f *fakeStore) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

// fakeQueue records published jobs. It also snapshots the store's upload
// count at publish time so tests can assert upload-before-publish ordering.
type fakeQueue struct {
	mu               sync.Mutex
	jobs             []*model.PendingJob
	publishErr       error
	store            *fakeStore
	uploadsAtPublish []int
}

func (f *fakeQueue) Publish(ctx context.Context, job *model.PendingJob) (string, error) {
	if f.publishErr != nil {
		return "", f.publishErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *job
	f.jobs = append(f.jobs, &cp)
	if f.store != nil {
		f.uploadsAtPublish = append(f.uploadsAtPublish, f.store.uploadCount())
	}
	return "mid-1", nil
}

// fakePredictions is an in-memory prediction lookup.
type fakePredictions struct {
	docs map[string]*model.PredictionResult
	err  error
}

func (f *fakePredictions) FindByID(ctx context.Context, predictionID string) (*model.PredictionResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[predictionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *doc
	return &cp, nil
}
