package config

import (
	"io/fs"
	"os"
	"path/filepath"

	"apex/internal/models/global"
)

// LoadHosts lists the virtual hosts under root: every directory directly
// below it, in name order. Plain files such as 404.html are skipped.
func LoadHosts(root string) ([]*global.VirtualHost, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var hosts []*global.VirtualHost

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		host := &global.VirtualHost{
			Name: e.Name(),
			Path: filepath.Join(root, e.Name()),
		}

		err := filepath.WalkDir(host.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			host.Files++
			host.Bytes += uint64(info.Size())
			return nil
		})
		if err != nil {
			return nil, err
		}

		hosts = append(hosts, host)
	}

	return hosts, nil
}
