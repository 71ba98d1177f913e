package domain

import (
	"fmt"
	"strings"
)

const (
	// AudioOnlyResolution é o valor sentinela que o backend usa no lugar de uma resolução
	AudioOnlyResolution = "audio only"

	// MaxVisibleFormats limita apenas a exibição, a lista completa continua no estado
	MaxVisibleFormats = 10

	bytesPerMegabyte = 1024 * 1024
)

type Category int

const (
	CategoryAudio Category = iota
	CategoryVideo
)

func (c Category) String() string {
	if c == CategoryVideo {
		return "video"
	}
	return "audio"
}

// FormatFileSize renders a byte count in megabytes with one decimal place.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "Unknown size"
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/bytesPerMegabyte)
}

func (f VideoFormat) Category() Category {
	if f.Resolution != "" && f.Resolution != AudioOnlyResolution {
		return CategoryVideo
	}
	return CategoryAudio
}

func (f VideoFormat) Label() string {
	resolution := f.Resolution
	if resolution == "" {
		resolution = "Audio Only"
	}
	return resolution + " - " + strings.ToUpper(f.Ext)
}

// Detail is the secondary line of a format row: the note, when present,
// followed by the file size.
func (f VideoFormat) Detail() string {
	size := FormatFileSize(f.Filesize)
	if f.FormatNote == "" {
		return size
	}
	return f.FormatNote + " • " + size
}

func (v VideoInfo) VisibleFormats() []VideoFormat {
	if len(v.Formats) <= MaxVisibleFormats {
		return v.Formats
	}
	return v.Formats[:MaxVisibleFormats]
}
