package localfs

// Config defines configuration options for the local filesystem retriever.
type Config struct {
	// RootPath is the directory under which all servable files must reside
	// (required). It is canonicalized once at startup and is immutable for
	// the process lifetime.
	RootPath string `yaml:"root_path" validate:"required"`

	// AllowedExtensions is the ordered list of candidate extensions tried
	// when a requested path has none. First match wins.
	AllowedExtensions []string `yaml:"allowed_extensions" default:"[\".png\", \".jpg\", \".jpeg\", \".gif\", \".webp\"]"`

	// ThumbnailMaxWidth bounds thumbnail derivative width. Default is 150.
	ThumbnailMaxWidth int `yaml:"thumbnail_max_width" validate:"required" default:"150"`

	// ThumbnailMaxHeight bounds thumbnail derivative height. Default is 150.
	ThumbnailMaxHeight int `yaml:"thumbnail_max_height" validate:"required" default:"150"`

	// MobileMaxWidth bounds mobile derivative width. Default is 800.
	MobileMaxWidth int `yaml:"mobile_max_width" validate:"required" default:"800"`

	// MobileMaxHeight bounds mobile derivative height. Default is 800.
	MobileMaxHeight int `yaml:"mobile_max_height" validate:"required" default:"800"`

	// CompressionQuality is the default re-encode quality for lossy
	// formats, in [1, 100]. Default is 75.
	CompressionQuality int `yaml:"compression_quality" validate:"gte=1,lte=100" default:"75"`

	// MaxBatchItems caps the number of paths accepted by a single batch
	// request. Default is 100.
	MaxBatchItems int `yaml:"max_batch_items" validate:"required" default:"100"`

	// BatchConcurrency bounds how many batch items are processed in
	// parallel. Default is 8.
	BatchConcurrency int `yaml:"batch_concurrency" validate:"required" default:"8"`
}
