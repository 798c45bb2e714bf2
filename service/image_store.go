package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/keapril/WebInventory/cache"
	"github.com/keapril/WebInventory/storage"
	"github.com/keapril/WebInventory/utils"
)

const (
	// maxImageWidth is the downscale bound for uploads
	maxImageWidth = 800
	// jpegQuality is the re-encode quality for uploads
	jpegQuality = 80
	// signedURLTTL bounds legacy signed links
	signedURLTTL = time.Hour
)

// ImageStore provides a uniform put/resolve interface over an ordered chain
// of object-storage backends. Uploads try each backend in order and stop at
// the first success; resolution classifies stored references by shape.
// Implements ImageStoreInterface.
type ImageStore struct {
	backends   []storage.Backend
	signer     storage.Signer
	publicBase string
	urlCache   *cache.Cache
	now        func() time.Time
}

// NewImageStore creates an ImageStore. backends is the ordered fallback
// chain (primary first); signer resolves legacy references; publicBase is
// the primary backend's public domain, used to absolutize relative paths.
func NewImageStore(backends []storage.Backend, signer storage.Signer, publicBase string, urlCache *cache.Cache) *ImageStore {
	return &ImageStore{
		backends:   backends,
		signer:     signer,
		publicBase: strings.TrimSuffix(publicBase, "/"),
		urlCache:   urlCache,
		now:        time.Now,
	}
}

// Ensure ImageStore implements ImageStoreInterface
var _ ImageStoreInterface = (*ImageStore)(nil)

// Put decodes, normalizes and re-encodes the image, then uploads it under a
// key derived from the sanitized SKU and a write-time unix timestamp:
// images/{safeSku}-{unixTime}.jpg. Backends are tried in order; the error is
// surfaced only when every backend fails, and no reference is persisted.
func (s *ImageStore) Put(ctx context.Context, data []byte, sku string) (string, error) {
	if len(s.backends) == 0 {
		return "", fmt.Errorf("no image backends configured")
	}

	jpegData, err := s.process(data)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("images/%s-%d.jpg", utils.SanitizeSKU(sku), s.now().Unix())

	var errs []string
	for _, backend := range s.backends {
		url, err := backend.Put(ctx, key, jpegData, "image/jpeg")
		if err == nil {
			return url, nil
		}
		log.Printf("⚠️  Image backend %s failed for %s, trying next: %v", backend.Name(), key, err)
		errs = append(errs, fmt.Sprintf("%s: %v", backend.Name(), err))
	}

	return "", fmt.Errorf("all image backends failed for %s: %s", key, strings.Join(errs, " | "))
}

// process decodes the upload, flattens transparency onto white, downscales
// to maxImageWidth preserving aspect ratio, and re-encodes as JPEG.
func (s *ImageStore) process(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if hasTransparency(img) {
		bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
		img = imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// hasTransparency reports whether the decoded image carries an alpha or
// palette channel that must be flattened before JPEG encoding.
func hasTransparency(img image.Image) bool {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64, *image.Paletted:
		return true
	default:
		return false
	}
}

// Resolve classifies a stored reference by shape, in priority order:
// empty, inline data URI, legacy-backend absolute URL (re-signed for one
// hour), any other absolute URL, relative storage path. It is idempotent,
// side-effect-free apart from the signing call, and never fails — worst
// case the original string comes back unchanged.
func (s *ImageStore) Resolve(ctx context.Context, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	if strings.HasPrefix(ref, "data:") {
		return ref
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}

	if u.Scheme == "http" || u.Scheme == "https" {
		if s.signer != nil && s.signer.MatchesHost(u.Host) {
			return s.resolveLegacy(ctx, ref, u)
		}
		return ref
	}

	// Relative storage path: serve from the primary backend's public domain
	if s.publicBase == "" {
		return ref
	}
	return s.publicBase + "/" + strings.TrimPrefix(ref, "/")
}

// resolveLegacy extracts the storage path from a legacy URL and requests a
// time-boxed signed URL, falling back to the raw URL when signing fails.
func (s *ImageStore) resolveLegacy(ctx context.Context, ref string, u *url.URL) string {
	if cached, ok := s.urlCache.Get(ctx, "imgurl:"+ref); ok {
		return cached
	}

	// Legacy URL shape: https://<host>/<bucket>/<object path>
	parts := strings.SplitN(u.Path, "/", 3)
	if len(parts) < 3 || parts[2] == "" {
		return ref
	}
	objectPath, err := url.PathUnescape(parts[2])
	if err != nil {
		objectPath = parts[2]
	}

	signed, err := s.signer.SignedURL(objectPath, signedURLTTL)
	if err != nil {
		log.Printf("⚠️  Failed to sign legacy image url %s: %v", ref, err)
		return ref
	}

	s.urlCache.Set(ctx, "imgurl:"+ref, signed, signedURLTTL)
	return signed
}
