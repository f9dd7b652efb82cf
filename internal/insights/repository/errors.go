package repository

import "errors"

var (
	ErrRunNotFound = errors.New("sync run not found")
	ErrLoadFailed  = errors.New("insight load failed")
	ErrCacheDecode = errors.New("cached run payload is not decodable")
)
