package tag

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	// Decoders for the formats YouTube serves thumbnails in. The result is
	// always re-encoded as JPEG because the embedders only accept JPEG.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// JPEG extensions that are streamed verbatim instead of re-encoded
var jpegExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// materializeCover turns a thumbnail reference into a local JPEG file. A
// reference that is an existing local path is returned as-is with owned=false
// (never delete user-owned files); anything else is fetched over HTTP into a
// temporary file the caller owns and must remove after embedding.
func (e *Embedder) materializeCover(ref string) (path string, owned bool, err error) {
	if _, statErr := os.Stat(ref); statErr == nil {
		return ref, false, nil
	}

	resp, err := e.client.Get(ref)
	if err != nil {
		return "", false, fmt.Errorf("fetch thumbnail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("fetch thumbnail: unexpected status %s", resp.Status)
	}

	out, err := os.CreateTemp("", "ytgrab-cover-*.jpg")
	if err != nil {
		return "", false, fmt.Errorf("create cover temp file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(stripQuery(ref)))
	if jpegExtensions[ext] {
		_, err = io.Copy(out, resp.Body)
	} else {
		err = reencodeJPEG(out, resp.Body)
	}
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(out.Name())
		return "", false, fmt.Errorf("materialize thumbnail: %w", err)
	}
	return out.Name(), true, nil
}

// reencodeJPEG decodes an arbitrary raster image and writes it as JPEG.
func reencodeJPEG(w io.Writer, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	return jpeg.Encode(w, img, nil)
}

// stripQuery drops a URL query so the extension check sees the path only.
func stripQuery(ref string) string {
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		return ref[:i]
	}
	return ref
}
