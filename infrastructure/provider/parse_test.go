package provider

import (
	"fmt"
	"strings"
	"testing"

	"TUI_video_downloader/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVideoInfo_AllFields(t *testing.T) {
	body := `{
		"title": "My video",
		"formats": [
			{"format_id": "137", "format_note": "1080p", "ext": "mp4", "resolution": "1920x1080", "filesize": 52428800, "url": "https://cdn/137"},
			{"format_id": "140", "ext": "m4a", "resolution": "audio only", "filesize": null, "format_note": null},
			{"format_id": "251", "ext": "webm"}
		]
	}`

	info, err := parseVideoInfo([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "My video", info.Title)
	require.Len(t, info.Formats, 3)

	assert.Equal(t, domain.VideoFormat{
		FormatID:   "137",
		FormatNote: "1080p",
		Ext:        "mp4",
		Resolution: "1920x1080",
		Filesize:   52428800,
		URL:        "https://cdn/137",
	}, info.Formats[0])

	assert.Equal(t, "140", info.Formats[1].FormatID)
	assert.Equal(t, domain.CategoryAudio, info.Formats[1].Category())
	assert.Equal(t, "Unknown size", info.Formats[1].Detail())

	assert.Equal(t, "Audio Only - WEBM", info.Formats[2].Label())
}

func TestParseVideoInfo_EmptyFormats(t *testing.T) {
	info, err := parseVideoInfo([]byte(`{"title":"T","formats":[]}`))
	require.NoError(t, err)
	assert.Empty(t, info.Formats)
}

func TestParseVideoInfo_PreservesOrder(t *testing.T) {
	ids := make([]string, 15)
	items := make([]string, 15)
	for i := range items {
		ids[i] = fmt.Sprintf("id-%02d", 14-i)
		items[i] = fmt.Sprintf(`{"format_id":%q,"ext":"mp4"}`, ids[i])
	}
	body := `{"title":"T","formats":[` + strings.Join(items, ",") + `]}`

	info, err := parseVideoInfo([]byte(body))
	require.NoError(t, err)

	require.Len(t, info.Formats, 15)
	for i, f := range info.Formats {
		assert.Equal(t, ids[i], f.FormatID)
	}
}

func TestParseVideoInfo_FractionalFilesize(t *testing.T) {
	info, err := parseVideoInfo([]byte(`{"title":"T","formats":[{"format_id":"a","ext":"mp4","filesize":1048576.0}]}`))
	require.NoError(t, err)
	assert.Equal(t, int64(1048576), info.Formats[0].Filesize)
}

func TestParseVideoInfo_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"array root", `[]`, "$"},
		{"missing title", `{"formats":[]}`, "title"},
		{"numeric title", `{"title":1,"formats":[]}`, "title"},
		{"missing formats", `{"title":"T"}`, "formats"},
		{"formats object", `{"title":"T","formats":{}}`, "formats"},
		{"format not object", `{"title":"T","formats":["f1"]}`, "formats[0]"},
		{"missing format_id", `{"title":"T","formats":[{"ext":"mp4"}]}`, "formats[0].format_id"},
		{"numeric format_id", `{"title":"T","formats":[{"format_id":18,"ext":"mp4"}]}`, "formats[0].format_id"},
		{"empty format_id", `{"title":"T","formats":[{"format_id":"","ext":"mp4"}]}`, "formats[0].format_id"},
		{"missing ext", `{"title":"T","formats":[{"format_id":"a"}]}`, "formats[0].ext"},
		{"string filesize", `{"title":"T","formats":[{"format_id":"a","ext":"mp4","filesize":"10"}]}`, "formats[0].filesize"},
		{"negative filesize", `{"title":"T","formats":[{"format_id":"a","ext":"mp4","filesize":-1}]}`, "formats[0].filesize"},
		{"numeric resolution", `{"title":"T","formats":[{"format_id":"a","ext":"mp4","resolution":720}]}`, "formats[0].resolution"},
		{"duplicated id", `{"title":"T","formats":[{"format_id":"a","ext":"mp4"},{"format_id":"a","ext":"webm"}]}`, "formats[1].format_id"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseVideoInfo([]byte(test.body))

			var schemaErr *domain.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, test.field, schemaErr.Field)
		})
	}
}

func TestParseVideoInfo_InvalidJSON(t *testing.T) {
	for _, body := range []string{"", "not json", `{"title":"T",}`, "<html></html>"} {
		_, err := parseVideoInfo([]byte(body))
		assert.ErrorIs(t, err, errInvalidJSON, "body=%q", body)
	}
}
