package provider

import (
	"TUI_video_downloader/internal/core/domain"
	"errors"
	"fmt"
	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// parseVideoInfo checks the shape of a formats response and converts it.
// Optional fields may be missing or null; required ones must have the right
// type.
func parseVideoInfo(body []byte) (domain.VideoInfo, error) {
	if !gjson.ValidBytes(body) {
		return domain.VideoInfo{}, errInvalidJSON
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return domain.VideoInfo{}, &domain.SchemaError{Field: "$", Reason: "expected an object"}
	}

	title := root.Get("title")
	if title.Type != gjson.String {
		return domain.VideoInfo{}, &domain.SchemaError{Field: "title", Reason: "expected a string"}
	}

	formats := root.Get("formats")
	if !formats.IsArray() {
		return domain.VideoInfo{}, &domain.SchemaError{Field: "formats", Reason: "expected an array"}
	}

	items := formats.Array()
	info := domain.VideoInfo{
		Title:   title.String(),
		Formats: make([]domain.VideoFormat, 0, len(items)),
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		path := fmt.Sprintf("formats[%d]", i)

		format, err := parseVideoFormat(item, path)
		if err != nil {
			return domain.VideoInfo{}, err
		}

		if _, dup := seen[format.FormatID]; dup {
			return domain.VideoInfo{}, &domain.SchemaError{Field: path + ".format_id", Reason: "duplicated id " + format.FormatID}
		}
		seen[format.FormatID] = struct{}{}

		info.Formats = append(info.Formats, format)
	}

	return info, nil
}

func parseVideoFormat(item gjson.Result, path string) (domain.VideoFormat, error) {
	if !item.IsObject() {
		return domain.VideoFormat{}, &domain.SchemaError{Field: path, Reason: "expected an object"}
	}

	id, err := requiredString(item, "format_id", path)
	if err != nil {
		return domain.VideoFormat{}, err
	}
	if id == "" {
		return domain.VideoFormat{}, &domain.SchemaError{Field: path + ".format_id", Reason: "must not be empty"}
	}

	ext, err := requiredString(item, "ext", path)
	if err != nil {
		return domain.VideoFormat{}, err
	}

	note, err := optionalString(item, "format_note", path)
	if err != nil {
		return domain.VideoFormat{}, err
	}

	resolution, err := optionalString(item, "resolution", path)
	if err != nil {
		return domain.VideoFormat{}, err
	}

	mediaURL, err := optionalString(item, "url", path)
	if err != nil {
		return domain.VideoFormat{}, err
	}

	size, err := optionalSize(item, "filesize", path)
	if err != nil {
		return domain.VideoFormat{}, err
	}

	return domain.VideoFormat{
		FormatID:   id,
		FormatNote: note,
		Ext:        ext,
		Resolution: resolution,
		Filesize:   size,
		URL:        mediaURL,
	}, nil
}

func requiredString(item gjson.Result, key, path string) (string, error) {
	value := item.Get(key)
	if value.Type != gjson.String {
		return "", &domain.SchemaError{Field: path + "." + key, Reason: "expected a string"}
	}
	return value.String(), nil
}

func optionalString(item gjson.Result, key, path string) (string, error) {
	value := item.Get(key)
	switch value.Type {
	case gjson.Null:
		return "", nil
	case gjson.String:
		return value.String(), nil
	default:
		return "", &domain.SchemaError{Field: path + "." + key, Reason: "expected a string or null"}
	}
}

func optionalSize(item gjson.Result, key, path string) (int64, error) {
	value := item.Get(key)
	switch value.Type {
	case gjson.Null:
		return 0, nil
	case gjson.Number:
		if value.Float() < 0 {
			return 0, &domain.SchemaError{Field: path + "." + key, Reason: "must not be negative"}
		}
		return value.Int(), nil
	default:
		return 0, &domain.SchemaError{Field: path + "." + key, Reason: "expected a number or null"}
	}
}
