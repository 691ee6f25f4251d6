package service

import "errors"

var (
	ErrRead  = errors.New("read error")
	ErrParse = errors.New("parse error")
	ErrWrite = errors.New("write error")
)
