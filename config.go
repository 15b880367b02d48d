package loom

import "github.com/TheBitDrifter/table"

// Config holds global configuration for the table system
var Config config = config{}

type config struct {
	tableEvents table.TableEvents
}

// SetTableEvents configures the table event callbacks
func (c *config) SetTableEvents(te table.TableEvents) {
	c.tableEvents = te
}

// cursorLockBit is the lock bit held by a Cursor between Initialize
// and Reset. CachedQuery.Apply/RevApply deliberately do not take a
// lock: their snapshot-then-scan design (see cached_query.go) is safe
// under the callback mutating storage, and locking would defer that
// mutation into the operation queue instead of applying it immediately.
const cursorLockBit uint32 = 0
