package artifact

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps blobs in process memory and signs its own download URLs
// with HMAC. It is the degraded mode used when no object storage is
// configured; the signed URLs are served by the raw artifact endpoint.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]memoryBlob

	secret  []byte
	baseURL string
	now     func() time.Time
}

type memoryBlob struct {
	data        []byte
	contentType string
}

// NewMemoryStore creates an in-memory blob store. baseURL is the externally
// reachable address the signed URLs point at.
func NewMemoryStore(baseURL string) *MemoryStore {
	secret := make([]byte, 32)
	rand.Read(secret)
	return &MemoryStore{
		blobs:   map[string]memoryBlob{},
		secret:  secret,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	s.blobs[key] = memoryBlob{data: cp, contentType: contentType}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	s.mu.RLock()
	blob, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	cp := make([]byte, len(blob.data))
	copy(cp, blob.data)
	return cp, blob.contentType, nil
}

// Presign builds an HMAC-signed URL against the raw artifact endpoint.
// Expiry is checked by Verify when the URL is served.
func (s *MemoryStore) Presign(ctx context.Context, key, filename string, ttl time.Duration) (string, error) {
	s.mu.RLock()
	_, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	expires := s.now().Add(ttl).Unix()
	q := url.Values{}
	q.Set("key", key)
	q.Set("filename", filename)
	q.Set("expires", strconv.FormatInt(expires, 10))
	q.Set("signature", s.sign(key, expires))

	return s.baseURL + "/api/v1/artifacts/raw?" + q.Encode(), nil
}

// Verify checks a signed URL's signature and expiry.
func (s *MemoryStore) Verify(key string, expires int64, signature string) bool {
	if s.now().Unix() > expires {
		return false
	}
	expected := s.sign(key, expires)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *MemoryStore) sign(key string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s|%d", key, expires)
	return hex.EncodeToString(mac.Sum(nil))
}
