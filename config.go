package buddy

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

import "github.com/bnclabs/gobuddy/api"

// Maxrank largest size class, a rank-r block spans 2^(r-1) pages.
const Maxrank = api.Maxrank

// Maxpages maximum number of pages a single arena can track. Can be
// used as default for settings-parameter `npages`.
const Maxpages = api.Maxpages

// Defaultpagesize default size of a single page, in bytes.
const Defaultpagesize = api.Defaultpagesize

// Defaultsettings for arena, along with the system derived sizing.
//
// "pagesize" (int64, default: 4096)
//		Size of a single page in bytes, shall be a power of 2.
//
// "npages" (int64, default: freeRAM / pagesize, capped at Maxpages)
//		Number of pages to track in the arena.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	npages := int64(free) / Defaultpagesize
	if npages > Maxpages {
		npages = Maxpages
	}
	return s.Settings{
		"pagesize": Defaultpagesize,
		"npages":   npages,
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
