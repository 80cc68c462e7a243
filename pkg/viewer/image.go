package viewer

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var errNoImage = errors.New("empty image source")

// decodeImage turns an image reference into a resource. Data URIs are
// decoded in place, anything else is read as a file path.
func decodeImage(src string) (fyne.Resource, error) {
	if src == "" {
		return nil, errNoImage
	}
	if !strings.HasPrefix(src, "data:") {
		res, err := fyne.LoadResourceFromPath(src)
		if err != nil {
			return nil, fmt.Errorf("failed to load image %s: %w", src, err)
		}
		return res, nil
	}

	meta, payload, ok := strings.Cut(strings.TrimPrefix(src, "data:"), ",")
	if !ok {
		return nil, errors.New("malformed data uri")
	}

	var content []byte
	if strings.HasSuffix(meta, ";base64") {
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode data uri: %w", err)
		}
		content = raw
	} else {
		raw, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode data uri: %w", err)
		}
		content = []byte(raw)
	}
	if len(content) == 0 {
		return nil, errNoImage
	}

	mime, _, _ := strings.Cut(meta, ";")
	return fyne.NewStaticResource("remove"+extension(mime), content), nil
}

func extension(mime string) string {
	switch mime {
	case "image/svg+xml":
		return ".svg"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

// iconFor caches decoded images by source and falls back to the theme's
// delete icon when a source cannot be decoded.
func (v *MapView) iconFor(src string) fyne.Resource {
	if res, ok := v.icons[src]; ok {
		return res
	}

	res, err := decodeImage(src)
	if err != nil {
		fyne.LogError("remove control image", err)
		res = theme.DeleteIcon()
	}
	if v.icons == nil {
		v.icons = make(map[string]fyne.Resource)
	}
	v.icons[src] = res
	return res
}
