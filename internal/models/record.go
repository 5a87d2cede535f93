package models

type Record struct {
	Client  string
	Method  string
	Host    string
	Path    string
	Headers Headers
}
