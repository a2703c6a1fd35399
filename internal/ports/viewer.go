package ports

// ImageViewer opens images and links outside the terminal
type ImageViewer interface {
	// Open opens a local image path or an http(s) URL with the system handler
	Open(target string) error
}
