package config

type Config struct {
	FeedURL     string
	Origin      string
	SurfaceAlt  string
	PreviewAddr string
	RefreshMs   int

	SenderAddr  string
	SenderPath  string
	SenderFPS   int
	FrameSize   int
	JPEGQuality int
}

func DefaultConfig() Config {
	return Config{
		FeedURL:     "ws://127.0.0.1:8000/ws/video_feed/",
		Origin:      "http://127.0.0.1/",
		SurfaceAlt:  "Live Feed",
		PreviewAddr: "127.0.0.1:8081",
		RefreshMs:   200,

		SenderAddr:  "127.0.0.1:8000",
		SenderPath:  "/ws/video_feed/",
		SenderFPS:   30,
		FrameSize:   320,
		JPEGQuality: 80,
	}
}
