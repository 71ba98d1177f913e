package domain

// VideoFormat is one download option returned by the backend. Optional
// fields are left at their zero value when the backend omits them.
type VideoFormat struct {
	FormatID   string
	FormatNote string
	Ext        string
	Resolution string
	Filesize   int64
	URL        string
}

// VideoInfo is the result of a successful format retrieval. Formats keeps
// the backend preference order.
type VideoInfo struct {
	Title   string
	Formats []VideoFormat
}
