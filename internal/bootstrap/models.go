package bootstrap

import (
	"path/filepath"

	"github.com/boolean-maybe/kiss/store/assetstore"
	"github.com/boolean-maybe/kiss/util/sysinfo"
	"github.com/boolean-maybe/kiss/view/header"
)

// InitHeaderBaseStats sets the header stats that don't change while the app runs.
// Version, favourites and flow depth are maintained by the root layout.
func InitHeaderBaseStats(hdr *header.HeaderWidget, fileStore *assetstore.FileStore, info *sysinfo.SystemInfo) {
	hdr.SetStat("Store", filepath.Base(fileStore.Path()), 3)
	if info != nil {
		hdr.SetStat("Colors", info.ColorSupport, 4)
	}
}
