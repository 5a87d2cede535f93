package global

type VirtualHost struct {
	Name  string
	Path  string
	Files int
	Bytes uint64
}
