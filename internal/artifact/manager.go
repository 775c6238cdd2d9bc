package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"enterprise-advisors/internal/model"
)

// Store persists bytes as a ready artifact, writing the binary and its
// companion metadata under separate keys.
func (m *manager) Store(ctx context.Context, data []byte, kind model.ArtifactKind, advisor string) (model.Artifact, error) {
	info := kindOf(kind)
	now := m.now().UTC()
	id := uuid.NewString()

	a := model.Artifact{
		ID:          id,
		Kind:        kind,
		Advisor:     advisor,
		Status:      model.StatusReady,
		Filename:    filename(advisor, now.Format("20060102_150405"), info.ext),
		ContentType: info.contentType,
		Size:        int64(len(data)),
		Created:     now,
		StorageKey:  binaryKey(id, info.ext),
	}

	if err := m.store.Put(ctx, a.StorageKey, data, a.ContentType); err != nil {
		return model.Artifact{}, fmt.Errorf("artifact: failed to store binary: %w", err)
	}
	if err := m.putMeta(ctx, a); err != nil {
		return model.Artifact{}, err
	}

	m.l.Infof(ctx, "internal.artifact.Store: stored %s artifact %s (%d bytes) for %s", kind, id, len(data), advisor)
	return a, nil
}

// StorePending registers an asynchronous export job as a pending artifact.
// Only metadata is written; the binary arrives through Finalize.
func (m *manager) StorePending(ctx context.Context, pending model.PendingExport, advisor string) (model.Artifact, error) {
	info := kindOf(pending.Kind)
	now := m.now().UTC()
	id := uuid.NewString()
	job := pending.Job

	a := model.Artifact{
		ID:       id,
		Kind:     pending.Kind,
		Advisor:  advisor,
		Status:   model.StatusPending,
		Filename: filename(advisor, now.Format("20060102_150405"), info.ext),
		Created:  now,
		Job:      &job,
	}

	if err := m.putMeta(ctx, a); err != nil {
		return model.Artifact{}, err
	}

	m.l.Infof(ctx, "internal.artifact.StorePending: registered pending export %s (job %s) for %s", id, job.ExportID, advisor)
	return a, nil
}

// Finalize drives the pending -> ready|failed state machine one step.
// Each call makes exactly one download attempt; ready and failed artifacts
// pass through untouched so re-finalizing is a no-op. The lock is scoped to
// the artifact id: a slow download never blocks other artifacts.
func (m *manager) Finalize(ctx context.Context, id string) (model.Artifact, error) {
	lock := m.artifactLock(id)
	lock.Lock()
	defer lock.Unlock()

	a, err := m.getMeta(ctx, id)
	if err != nil {
		return model.Artifact{}, err
	}
	if a.Status != model.StatusPending {
		return a, nil
	}
	if a.Job == nil {
		return model.Artifact{}, fmt.Errorf("artifact: pending artifact %s has no job reference", id)
	}

	completer, ok := m.completers[a.Advisor]
	if !ok {
		return model.Artifact{}, fmt.Errorf("%w: %s", ErrNoCompleter, a.Advisor)
	}

	a.Attempts++
	data, contentType, fetchErr := completer.Fetch(ctx, *a.Job)
	if fetchErr != nil {
		m.l.Warnf(ctx, "internal.artifact.Finalize: attempt %d/%d for %s failed: %v", a.Attempts, m.cfg.MaxDownloadAttempts, id, fetchErr)
		if a.Attempts >= m.cfg.MaxDownloadAttempts {
			a.Status = model.StatusFailed
			a.FailureReason = FailureRetryExhausted
		}
		if err := m.putMeta(ctx, a); err != nil {
			return model.Artifact{}, err
		}
		return a, nil
	}

	info := kindOf(a.Kind)
	if contentType == "" {
		contentType = info.contentType
	}
	a.StorageKey = binaryKey(a.ID, info.ext)
	if err := m.store.Put(ctx, a.StorageKey, data, contentType); err != nil {
		return model.Artifact{}, fmt.Errorf("artifact: failed to store binary: %w", err)
	}

	a.Status = model.StatusReady
	a.ContentType = contentType
	a.Size = int64(len(data))
	if err := m.putMeta(ctx, a); err != nil {
		return model.Artifact{}, err
	}

	m.l.Infof(ctx, "internal.artifact.Finalize: artifact %s ready after %d attempt(s), %d bytes", id, a.Attempts, len(data))
	return a, nil
}

// Presign issues a fresh time-limited download handle. Only ready artifacts
// qualify; expiry is enforced by the store, not tracked here.
func (m *manager) Presign(ctx context.Context, id string) (model.DownloadHandle, error) {
	a, err := m.getMeta(ctx, id)
	if err != nil {
		return model.DownloadHandle{}, err
	}
	if a.Status != model.StatusReady {
		return model.DownloadHandle{}, fmt.Errorf("%w: artifact %s is %s", ErrNotReady, id, a.Status)
	}

	url, err := m.store.Presign(ctx, a.StorageKey, a.Filename, m.cfg.PresignTTL)
	if err != nil {
		return model.DownloadHandle{}, fmt.Errorf("artifact: failed to presign %s: %w", id, err)
	}

	return model.DownloadHandle{
		ArtifactID: a.ID,
		URL:        url,
		Filename:   a.Filename,
		ExpiresIn:  m.cfg.PresignTTL,
	}, nil
}

// Get returns artifact metadata.
func (m *manager) Get(ctx context.Context, id string) (model.Artifact, error) {
	return m.getMeta(ctx, id)
}

func (m *manager) putMeta(ctx context.Context, a model.Artifact) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("artifact: failed to marshal metadata: %w", err)
	}
	if err := m.store.Put(ctx, metaKey(a.ID), raw, metaContentType); err != nil {
		return fmt.Errorf("artifact: failed to store metadata: %w", err)
	}
	m.cache.Add(a.ID, a)
	return nil
}

func (m *manager) getMeta(ctx context.Context, id string) (model.Artifact, error) {
	if a, ok := m.cache.Get(id); ok {
		return a, nil
	}

	raw, _, err := m.store.Get(ctx, metaKey(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Artifact{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return model.Artifact{}, fmt.Errorf("artifact: failed to load metadata for %s: %w", id, err)
	}

	var a model.Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return model.Artifact{}, fmt.Errorf("artifact: corrupt metadata for %s: %w", id, err)
	}
	m.cache.Add(id, a)
	return a, nil
}

// artifactLock returns the finalize mutex for one artifact id. Entries stay
// in the map for the manager's lifetime; the population is bounded by the
// artifacts this process finalizes.
func (m *manager) artifactLock(id string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[id] = lock
	}
	return lock
}

func metaKey(id string) string { return "artifact/" + id + ".json" }

func binaryKey(id, ext string) string { return "artifact/" + id + "." + ext }

func filename(advisor, stamp, ext string) string {
	name := strings.ToLower(strings.ReplaceAll(advisor, " ", "_"))
	return fmt.Sprintf("%s_%s.%s", name, stamp, ext)
}
