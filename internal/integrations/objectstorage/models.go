package objectstorage

// Бакеты хранилища
const (
	BucketAvatars  = "avatars"
	BucketProducts = "products"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Object загружаемый файл
type Object struct {
	Bucket      string
	Prefix      string // например "professionals/12"
	ContentType string
	Data        []byte
}

// ErrorResponse модель ошибки хранилища
type ErrorResponse struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}
