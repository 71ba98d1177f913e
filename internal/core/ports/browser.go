package ports

type BrowserPort interface {
	OpenURL(url string) error
}
