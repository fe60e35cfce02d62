package filestore

import "errors"

var (
	// ErrDisabled возвращается, когда файловое хранилище выключено в конфиге
	ErrDisabled = errors.New("filestore: storage is disabled")

	// ErrEmptyImage возвращается при попытке загрузить пустое изображение
	ErrEmptyImage = errors.New("filestore: empty image data")

	// ErrUploadFailed возвращается, когда хранилище отклонило загрузку
	ErrUploadFailed = errors.New("filestore: upload failed")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("filestore: invalid response")
)
